package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addTag string

var addCmd = &cobra.Command{
	Use:   "add [name] [text...]",
	Short: "Add a note",
	Long: `Add a note with a unique name. All words after the name form the text.
Use --tag to label it.`,
	Example: `  notes add groceries milk eggs bread --tag home
  notes add todo "finish report"`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		msg, err := addNote(cmd.Context(), svc, args[0], strings.Join(args[1:], " "), addTag)
		if err != nil {
			fatal("Failed to add note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTag, "tag", "t", "", "Tag for the note")
}
