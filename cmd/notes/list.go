package main

import (
	"fmt"

	"github.com/aretw0/notes/pkg/core"
	"github.com/spf13/cobra"
)

var jsonOutput bool

var allCmd = &cobra.Command{
	Use:     "all",
	Aliases: []string{"list"},
	Short:   "List all notes in the book",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)
		printNotes(cmd, svc.List(), "The note book is empty.")
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags in use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		if jsonOutput {
			if err := writeJSON(cmd.OutOrStdout(), svc.Tags()); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTags(svc.Tags()))
	},
}

// printNotes writes notes as text lines, or as a JSON array with --json.
func printNotes(cmd *cobra.Command, notes []core.Note, empty string) {
	if jsonOutput {
		if err := writeJSON(cmd.OutOrStdout(), notes); err != nil {
			fatal("Error encoding JSON", err)
		}
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderNotes(notes, empty))
}

func init() {
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(tagsCmd)
	allCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	tagsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}
