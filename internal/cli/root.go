// Package cli implements the deckctl commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/logger"
	"github.com/deckio/deckctl/internal/store"
)

var (
	dbPath  string
	verbose bool
	log     zerolog.Logger
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "deckctl",
	Short: "Catalog and inspect simulation input decks",
	Long: "deckctl keeps serialized simulation input decks in a local SQLite catalog\n" +
		"and answers item-level queries against them: values, defaulted flags and\n" +
		"user-defined arguments, down to single record positions.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		log = logger.New(logger.Config{Level: level, Pretty: true})
	},
}

func init() {
	// Pick up DECKCTL_DB from a .env file if one is present.
	_ = godotenv.Load()

	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Catalog path (default: $DECKCTL_DB or ~/.deckctl/decks.db)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("DECKCTL_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".deckctl", "decks.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath(), log)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
