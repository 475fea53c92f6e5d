// Package cli implements the contact-book CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/contact-book/internal/config"
	"github.com/rcliao/contact-book/internal/logging"
	"github.com/rcliao/contact-book/internal/store"
)

var (
	dbPath     string
	configPath string

	cfg    *config.Config
	logger = zap.NewNop()
)

// RootCmd is the top-level command. Without a subcommand it runs the
// interactive assistant.
var RootCmd = &cobra.Command{
	Use:   "contact-book",
	Short: "Console contact book with birthday reminders",
	Long: "Keeps names, phones and birthdays between runs and lists who to congratulate soon.\n" +
		"Run without a subcommand for the interactive assistant.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runInteractive,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $CONTACT_BOOK_DB_PATH or ~/.contact-book/contacts.db)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./contact-book.yaml or ~/.contact-book/contact-book.yaml)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err = logging.New(cfg.Log)
	if err != nil {
		logger = logging.Fallback(err)
	}
	return nil
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func openStore() (*store.SQLiteStore, error) {
	s, err := store.NewSQLiteStore(getDBPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}
