package main

import (
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var (
		outputDir   string
		chapters    string
		missingOnly bool
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show cached verses per chapter",
		Aliases: []string{"st"},
		GroupID: GroupCache,
		Args:    cobra.NoArgs,
		Long: `Show how many verses of each chapter are cached.

Reads the output directory only, no requests are made. The MISSING column
lists verses that a download run would fetch.`,
		Example: `  tajweed status                # All chapters
  tajweed status --missing      # Only chapters with missing verses
  tajweed status -c 2,kahf      # Selected chapters
  tajweed status --json         # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, outputDir, chapters, missingOnly, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().StringVarP(&chapters, "chapters", "c", "", "Chapters to show, e.g. 1-3,18,yasin (default all)")
	cmd.Flags().BoolVarP(&missingOnly, "missing", "m", false, "Only show chapters with missing verses")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	_ = cmd.MarkFlagDirname("output")
	_ = cmd.RegisterFlagCompletionFunc("chapters", completeChapters)

	return cmd
}
