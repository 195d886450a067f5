package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/introspection"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the note book and its storage",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openBook(cmd)

		if jsonOutput {
			if err := writeJSON(cmd.OutOrStdout(), svc.State()); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		printStatus(cmd.OutOrStdout(), svc)
	},
}

func printStatus(w io.Writer, intro introspection.Introspectable) {
	state, ok := intro.State().(core.ServiceState)
	if !ok {
		fmt.Fprintf(w, "%+v\n", intro.State())
		return
	}

	writes := "allowed"
	if state.Guarded {
		writes = "refused (corrupt book, re-run with --force)"
	}
	fmt.Fprintf(w, "Book:        %s (%s)\n", state.Location, state.StorageType)
	fmt.Fprintf(w, "Notes:       %d\n", state.Notes)
	fmt.Fprintf(w, "Ignore case: %t\n", state.IgnoreCase)
	fmt.Fprintf(w, "Writes:      %s\n", writes)

	if store, ok := state.Storage.(fs.StoreState); ok {
		fmt.Fprintf(w, "Format:      %s\n", store.Format)
		fmt.Fprintf(w, "Formats:     %s\n", strings.Join(store.Serializers, " "))
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}
