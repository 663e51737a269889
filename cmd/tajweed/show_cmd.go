package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		outputDir string
		fetch     bool
		copyOut   bool
	)

	cmd := &cobra.Command{
		Use:     "show <chapter:verse>",
		Short:   "Print the cached markup of a verse",
		Aliases: []string{"cat"},
		GroupID: GroupCache,
		Args:    cobra.ExactArgs(1),
		Long: `Print the cached tajweed markup of a single verse to stdout.

With --fetch, a verse that is not cached yet is downloaded and cached first.`,
		Example: `  tajweed show 2:255            # Print Ayat al-Kursi
  tajweed show 112:1 --fetch    # Download if missing
  tajweed show 1:1 --copy       # Also copy to the clipboard`,
		ValidArgsFunction: completeVerseKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], outputDir, fetch, copyOut)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVarP(&fetch, "fetch", "f", false, "Download the verse if it is not cached")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the markup to the clipboard")

	_ = cmd.MarkFlagDirname("output")

	return cmd
}
