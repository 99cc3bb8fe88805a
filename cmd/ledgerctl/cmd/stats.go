package cmd

import (
	"fmt"

	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display record counts and the receivable/payable position",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(svc *portssvc.ServiceContainer) error {
			stats, err := svc.Dashboard.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := svc.Dashboard.GetSummary(cmd.Context())
			if err != nil {
				return err
			}
			settings, err := svc.Settings.GetSettings(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== Ledger Statistics ===")
			fmt.Fprintf(out, "Customers:              %d\n", stats.Customers)
			fmt.Fprintf(out, "Suppliers:              %d\n", stats.Suppliers)
			fmt.Fprintf(out, "Customer transactions:  %d\n", stats.CustomerTransactions)
			fmt.Fprintf(out, "Supplier transactions:  %d\n", stats.SupplierTransactions)
			fmt.Fprintf(out, "Total receivable:       %s\n", utils.FormatCurrency(summary.TotalReceivable, settings))
			fmt.Fprintf(out, "Total payable:          %s\n", utils.FormatCurrency(summary.TotalPayable, settings))
			fmt.Fprintf(out, "Net position:           %s\n", utils.FormatCurrency(summary.NetPosition, settings))
			for _, f := range summary.FailedEntities {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s %s skipped, %d unreadable rows\n", f.Kind, f.Name, len(f.Errors))
			}
			return nil
		})
	},
}
