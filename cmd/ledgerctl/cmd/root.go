// Package cmd provides the ledgerctl commands. Every command opens the storage
// backend selected by the same environment the server reads.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/core/services"
	"github.com/SscSPs/ledger_book_app/internal/platform/config"
	"github.com/SscSPs/ledger_book_app/internal/platform/storage"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Inspect and maintain ledger book data",
	Long: `ledgerctl works directly against the configured storage backend.

Example:
  ledgerctl ledger customer 3f2a...
  ledgerctl backup -o backup.json
  ledgerctl restore backup.json
  ledgerctl hash-password`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(ledgerCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// withServices loads configuration, opens storage and hands the service container to fn.
func withServices(ctx context.Context, fn func(*portssvc.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	store, closeStore, err := storage.Open(ctx, cfg, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer closeStore()
	slog.Debug("Storage opened", "backend", cfg.StorageBackend)
	return fn(services.NewServiceContainer(cfg, store))
}
