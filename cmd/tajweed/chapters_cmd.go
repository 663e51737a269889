package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/output"
	"github.com/raphi011/tajweed/internal/quran"
	"github.com/raphi011/tajweed/internal/ui/static"
)

// chapterInfo is the JSON shape of one chapter in `tajweed chapters --json`.
type chapterInfo struct {
	Chapter int    `json:"chapter"`
	Name    string `json:"name"`
	Verses  int    `json:"verses"`
}

func newChaptersCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "chapters [query]",
		Short:   "List chapters and their verse counts",
		Aliases: []string{"ls"},
		GroupID: GroupIndex,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the 114 chapters with their verse counts.

The optional query fuzzily matches transliterated chapter names, best match
first. The same matching resolves names passed to --chapters.`,
		Example: `  tajweed chapters              # All chapters
  tajweed chapters kahf         # Find a chapter by name
  tajweed chapters --json       # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			query := strings.Join(args, " ")
			matches := quran.SearchChapters(query)
			if len(matches) == 0 {
				return fmt.Errorf("no chapter matches %q", query)
			}

			if jsonOutput {
				infos := make([]chapterInfo, 0, len(matches))
				for _, c := range matches {
					infos = append(infos, chapterInfo{Chapter: c, Name: quran.Name(c), Verses: quran.VerseCount(c)})
				}
				return out.JSON(infos)
			}

			rows := make([][]string, 0, len(matches))
			for _, c := range matches {
				rows = append(rows, []string{strconv.Itoa(c), quran.Name(c), strconv.Itoa(quran.VerseCount(c))})
			}
			out.Print(static.RenderTable([]string{"CHAPTER", "NAME", "VERSES"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
