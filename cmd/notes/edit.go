package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var editNameCmd = &cobra.Command{
	Use:   "edit_name [old] [new]",
	Short: "Rename a note",
	Long:  `Rename a note, keeping its text and tag. Fails if the new name is already taken.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		msg, err := renameNote(cmd.Context(), svc, args[0], args[1])
		if err != nil {
			fatal("Failed to rename note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var editTextCmd = &cobra.Command{
	Use:   "edit_text [name] [text...]",
	Short: "Replace the text of a note",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		msg, err := editNoteText(cmd.Context(), svc, args[0], strings.Join(args[1:], " "))
		if err != nil {
			fatal("Failed to edit note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

var editTagCmd = &cobra.Command{
	Use:   "edit_tag [name] [tag]",
	Short: "Retag a note",
	Long:  `Set the tag of a note. Omit the tag to remove it.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		tag := ""
		if len(args) == 2 {
			tag = args[1]
		}
		msg, err := editNoteTag(cmd.Context(), svc, args[0], tag)
		if err != nil {
			fatal("Failed to retag note", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	},
}

func init() {
	rootCmd.AddCommand(editNameCmd)
	rootCmd.AddCommand(editTextCmd)
	rootCmd.AddCommand(editTagCmd)
}
