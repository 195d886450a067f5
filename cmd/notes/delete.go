package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a note from the book",
	Long:  `Delete permanently removes a note. Deleting a name that is not in the book is not an error.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		msg, err := deleteNote(cmd.Context(), svc, args[0])
		if err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
