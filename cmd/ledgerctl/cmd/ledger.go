package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/spf13/cobra"
)

var exportPath string

var ledgerCmd = &cobra.Command{
	Use:   "ledger <customer|supplier> <id>",
	Short: "Print an entity's ledger with running balances",
	Long: `Print an entity's ledger with running balances, or write it to a file.

Example:
  ledgerctl ledger supplier 7c1e...
  ledgerctl ledger customer 3f2a... --export asha.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runLedger,
}

func init() {
	ledgerCmd.Flags().StringVar(&exportPath, "export", "", "write the ledger to this file; .csv selects CSV, anything else Excel")
}

func runLedger(cmd *cobra.Command, args []string) error {
	kind, err := domain.ParseEntityKind(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
		if exportPath != "" {
			return exportLedger(cmd, svc, kind, id)
		}

		entity, view, err := svc.Ledger.GetLedger(cmd.Context(), kind, id)
		if err != nil {
			return err
		}
		settings, err := svc.Settings.GetSettings(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s (%s)\n\n", kind.Label(), entity.Name, entity.Phone)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "Date\tParticulars\tDebit\tCredit\tBalance\t")
		for _, row := range view.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
				utils.FormatDate(row.Date, settings),
				row.Particular,
				utils.FormatWithPrecision(row.Debit, 2),
				utils.FormatWithPrecision(row.Credit, 2),
				utils.FormatCurrency(row.RunningBalance, settings))
		}
		fmt.Fprintf(w, "TOTAL\t\t%s\t%s\t%s\t\n",
			utils.FormatWithPrecision(view.TotalDebit, 2),
			utils.FormatWithPrecision(view.TotalCredit, 2),
			utils.FormatCurrency(view.FinalBalance, settings))
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nStatus: %s\n", view.Status)

		for _, rowErr := range view.RowErrors {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", rowErr.Error())
		}
		return view.Err()
	})
}

func exportLedger(cmd *cobra.Command, svc *portssvc.ServiceContainer, kind domain.EntityKind, id string) error {
	format := domain.ExportXLSX
	if strings.EqualFold(filepath.Ext(exportPath), ".csv") {
		format = domain.ExportCSV
	}
	file, err := svc.Export.ExportLedger(cmd.Context(), kind, id, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportPath, file.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportPath)
	return nil
}
