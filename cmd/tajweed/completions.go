package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/tajweed/internal/quran"
)

// completeChapters completes the last element of a comma-separated chapter
// selection with chapter numbers, described by their names.
func completeChapters(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	current := toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		current = toComplete[i+1:]
	}

	var matches []string
	for _, c := range quran.All() {
		n := strconv.Itoa(c)
		if strings.HasPrefix(n, current) {
			matches = append(matches, prefix+n+"\t"+quran.Name(c))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeVerseKeys completes "<chapter>:" and then the verses of that chapter.
func completeVerseKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	chapterPart, _, hasColon := strings.Cut(toComplete, ":")
	if !hasColon {
		var matches []string
		for _, c := range quran.All() {
			n := strconv.Itoa(c)
			if strings.HasPrefix(n, toComplete) {
				matches = append(matches, n+":\t"+quran.Name(c))
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}

	c, err := strconv.Atoi(chapterPart)
	if err != nil || !quran.ValidChapter(c) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, key := range quran.Verses(c) {
		if s := key.String(); strings.HasPrefix(s, toComplete) {
			matches = append(matches, s)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
