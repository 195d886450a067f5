package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [part of name...]",
	Short: "Search notes by name",
	Long:  `Search notes whose name contains the given text. Matching is case-sensitive unless --ignore-case is set.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)
		printNotes(cmd, svc.SearchByName(strings.Join(args, " ")), "No notes found.")
	},
}

var searchNotesCmd = &cobra.Command{
	Use:   "search_notes [keyword...]",
	Short: "Search notes by text",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)
		printNotes(cmd, svc.SearchByText(strings.Join(args, " ")), "No notes found by text.")
	},
}

var searchTagCmd = &cobra.Command{
	Use:   "search_tag [tag]",
	Short: "List notes with exactly this tag",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)
		printNotes(cmd, svc.SearchByTag(args[0]), "No notes with this tag.")
	},
}

var matchCmd = &cobra.Command{
	Use:     "match [glob]",
	Short:   "List notes whose name matches a glob",
	Example: `  notes match 'todo-*'
  notes match 'work/**'`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		found, err := svc.Match(args[0])
		if err != nil {
			fatal("Failed to match notes", err)
		}
		printNotes(cmd, found, "No notes match.")
	},
}

func init() {
	for _, c := range []*cobra.Command{searchCmd, searchNotesCmd, searchTagCmd, matchCmd} {
		rootCmd.AddCommand(c)
		c.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	}
}
