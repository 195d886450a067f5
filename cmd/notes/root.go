package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/internal/config"
	"github.com/aretw0/notes/internal/logging"
	"github.com/aretw0/notes/pkg/core"
	"github.com/spf13/cobra"
)

var (
	configPath string
	bookFile   string
	verbose    bool
	ignoreCase bool
	force      bool
	logFormat  string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "A personal note book for the terminal",
	Long: `notes keeps short named text notes, each with an optional tag.
Run without a command to start the interactive prompt.
Every change is saved to the book file right away.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		// Flags win over file and environment.
		if cmd.Flags().Changed("file") {
			loaded.File = bookFile
		}
		if cmd.Flags().Changed("ignore-case") {
			loaded.Search.IgnoreCase = ignoreCase
		}
		if cmd.Flags().Changed("log-format") {
			loaded.Log.Format = logFormat
		}
		if verbose {
			loaded.Log.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logger := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, os.Stderr)
		slog.SetDefault(logger)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		runShell(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openBook builds the note book service from the resolved config and loads it.
// A corrupt book file leaves an empty book with writes refused, unless --force is set.
func openBook(cmd *cobra.Command) *core.Service {
	svc, err := notes.New(cfg.File,
		notes.WithLogger(slog.Default()),
		notes.WithIgnoreCase(cfg.Search.IgnoreCase),
		notes.WithSearchParents(cfg.SearchParents),
	)
	if err != nil {
		fatal("Failed to open note book", err)
	}

	if err := svc.Load(cmd.Context()); err != nil {
		if !errors.Is(err, core.ErrCorruptStorage) {
			fatal("Failed to load note book", err)
		}
		slog.Warn("note book is corrupt, starting empty", "file", cfg.File, "error", err)
		if force {
			svc.Unguard()
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Changes will not be saved. Re-run with --force to overwrite the file.")
		}
	}

	return svc
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().StringVarP(&bookFile, "file", "f", "notes.json", "Book file (.json, .yaml or .csv)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive name and text search")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Overwrite a corrupt book file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "pretty", "Log format: text, json or pretty")
}
