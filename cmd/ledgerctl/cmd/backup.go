package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/spf13/cobra"
)

var (
	backupOutput string
	resetConfirm string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a full JSON backup",
	Long: `Write every customer, supplier, transaction and setting as one JSON document.

Example:
  ledgerctl backup -o ledger_backup.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
			backup, err := svc.Backup.CreateBackup(cmd.Context())
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(backup, "", "    ")
			if err != nil {
				return err
			}
			if backupOutput == "" || backupOutput == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return os.WriteFile(backupOutput, data, 0o600)
		})
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file|->",
	Short: "Merge a JSON backup into the current data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var raw []byte
		var err error
		if args[0] == "-" {
			raw, err = io.ReadAll(cmd.InOrStdin())
		} else {
			raw, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}

		return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
			report, err := svc.Backup.Restore(cmd.Context(), raw)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings restored:     %t\n", report.SettingsRestored)
			fmt.Fprintf(out, "Entities restored:     %d\n", report.EntitiesRestored)
			fmt.Fprintf(out, "Transactions restored: %d\n", report.TransactionsRestored)
			for _, f := range report.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s\n", f.String())
			}
			if !report.OK() {
				return fmt.Errorf("%d records could not be restored", len(report.Failures))
			}
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data",
	Long: `Delete every customer, supplier, transaction and setting. This cannot be undone.

Example:
  ledgerctl reset --confirm ` + dto.ResetConfirmation,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
			if err := svc.Backup.Reset(cmd.Context(), resetConfirm); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
			return nil
		})
	},
}

func init() {
	backupCmd.Flags().StringVarP(&backupOutput, "output", "o", "", "file to write (default stdout)")
	resetCmd.Flags().StringVar(&resetConfirm, "confirm", "", "must be "+dto.ResetConfirmation)
}
