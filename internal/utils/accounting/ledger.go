package accounting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SortChronological returns a copy of txns ordered by date ascending, ties by transaction id.
// Dates compare as strings, which is chronological only for zero-padded YYYY-MM-DD.
func SortChronological(txns []domain.Transaction) []domain.Transaction {
	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int {
		return cmp.Or(
			strings.Compare(a.Date, b.Date),
			strings.Compare(a.TransactionID, b.TransactionID),
		)
	})
	return sorted
}

// ComputeLedger sorts one entity's transactions, folds them into running balances
// and classifies the final balance.
//
// A row whose debit or credit cannot be read stays in the output with Error set,
// contributes zero to the running balance and totals, and is listed in RowErrors.
// The returned error is only for an unknown kind or convention.
func ComputeLedger(txns []domain.Transaction, kind domain.EntityKind, convention domain.BalanceConvention) (domain.LedgerView, error) {
	if _, err := SignedDelta(decimal.Zero, decimal.Zero, kind, convention); err != nil {
		return domain.LedgerView{}, err
	}

	view := domain.LedgerView{
		Kind:         kind,
		Rows:         make([]domain.LedgerRow, 0, len(txns)),
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		FinalBalance: decimal.Zero,
	}

	running := decimal.Zero
	for _, txn := range SortChronological(txns) {
		row := domain.LedgerRow{
			TransactionID: txn.TransactionID,
			Date:          txn.Date,
			Particular:    txn.Particular,
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}

		debit, credit, rowErrs := parseAmounts(txn)
		if len(rowErrs) > 0 {
			msgs := make([]string, len(rowErrs))
			for i, re := range rowErrs {
				msgs[i] = re.Field + ": " + re.Reason
			}
			row.Error = strings.Join(msgs, "; ")
			row.RunningBalance = running
			view.RowErrors = append(view.RowErrors, rowErrs...)
			view.Rows = append(view.Rows, row)
			continue
		}

		delta, _ := SignedDelta(debit, credit, kind, convention)
		running = running.Add(delta)

		row.Debit = debit
		row.Credit = credit
		row.RunningBalance = running
		view.TotalDebit = view.TotalDebit.Add(debit)
		view.TotalCredit = view.TotalCredit.Add(credit)
		view.Rows = append(view.Rows, row)
	}

	view.FinalBalance = running
	view.Status = ClassifyStatus(running, kind)
	return view, nil
}
