package accounting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultRecentLimit is the number of rows the recent-activity view shows when no limit is given.
const DefaultRecentLimit = 10

// AggregateBalances reduces every entity's final balance into receivable and payable totals.
// Entities whose ledger has unreadable rows are skipped and reported in FailedEntities.
func AggregateBalances(ledgers []domain.EntityLedger, convention domain.BalanceConvention) (domain.DashboardSummary, error) {
	summary := domain.DashboardSummary{
		TotalReceivable: decimal.Zero,
		TotalPayable:    decimal.Zero,
		NetPosition:     decimal.Zero,
	}

	for _, el := range ledgers {
		switch el.Entity.Kind {
		case domain.Customer:
			summary.CustomerCount++
		case domain.Supplier:
			summary.SupplierCount++
		}

		if el.Err != nil {
			summary.FailedEntities = append(summary.FailedEntities, domain.FailedEntity{
				EntityID: el.Entity.EntityID,
				Name:     el.Entity.Name,
				Kind:     el.Entity.Kind,
				Errors:   []domain.RowError{{Field: "transactions", Reason: el.Err.Error()}},
			})
			continue
		}

		view, err := ComputeLedger(el.Transactions, el.Entity.Kind, convention)
		if err != nil {
			return domain.DashboardSummary{}, err
		}
		if view.HasErrors() {
			summary.FailedEntities = append(summary.FailedEntities, domain.FailedEntity{
				EntityID: el.Entity.EntityID,
				Name:     el.Entity.Name,
				Kind:     el.Entity.Kind,
				Errors:   view.RowErrors,
			})
			continue
		}

		balance := view.FinalBalance
		switch el.Entity.Kind {
		case domain.Customer:
			if balance.IsPositive() {
				summary.TotalReceivable = summary.TotalReceivable.Add(balance)
			} else {
				summary.TotalPayable = summary.TotalPayable.Add(balance.Abs())
			}
		case domain.Supplier:
			if balance.IsNegative() {
				summary.TotalPayable = summary.TotalPayable.Add(balance.Abs())
			} else {
				summary.TotalReceivable = summary.TotalReceivable.Add(balance)
			}
		}
	}

	summary.NetPosition = summary.TotalReceivable.Sub(summary.TotalPayable)
	return summary, nil
}

// RecentActivity flattens every entity's transactions, newest date first, and keeps
// the first limit rows. Ties on date order by kind, entity id, then transaction id.
// A limit <= 0 means DefaultRecentLimit.
func RecentActivity(ledgers []domain.EntityLedger, limit int) []domain.ActivityItem {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var items []domain.ActivityItem
	for _, el := range ledgers {
		for _, txn := range el.Transactions {
			items = append(items, domain.ActivityItem{
				Transaction: txn,
				EntityID:    el.Entity.EntityID,
				EntityName:  el.Entity.Name,
				EntityKind:  el.Entity.Kind,
			})
		}
	}

	slices.SortFunc(items, func(a, b domain.ActivityItem) int {
		return cmp.Or(
			strings.Compare(b.Date, a.Date),
			strings.Compare(string(a.EntityKind), string(b.EntityKind)),
			strings.Compare(a.EntityID, b.EntityID),
			strings.Compare(a.TransactionID, b.TransactionID),
		)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	if items == nil {
		items = []domain.ActivityItem{}
	}
	return items
}

// MonthlySummary groups transactions by the YYYY-MM prefix of their date.
// Net is credit - debit for every kind. Unreadable rows are counted in SkippedRows.
func MonthlySummary(txns []domain.Transaction) domain.MonthlyOverview {
	byMonth := map[string]*domain.MonthlyTotal{}
	overview := domain.MonthlyOverview{Months: []domain.MonthlyTotal{}}

	for _, txn := range txns {
		debit, credit, rowErrs := parseAmounts(txn)
		if len(rowErrs) > 0 || len(txn.Date) < 7 {
			overview.SkippedRows++
			continue
		}
		month := txn.Date[:7]
		mt, ok := byMonth[month]
		if !ok {
			mt = &domain.MonthlyTotal{Month: month, Debit: decimal.Zero, Credit: decimal.Zero}
			byMonth[month] = mt
		}
		mt.Debit = mt.Debit.Add(debit)
		mt.Credit = mt.Credit.Add(credit)
	}

	for _, mt := range byMonth {
		mt.Net = mt.Credit.Sub(mt.Debit)
		overview.Months = append(overview.Months, *mt)
	}
	slices.SortFunc(overview.Months, func(a, b domain.MonthlyTotal) int {
		return strings.Compare(a.Month, b.Month)
	})
	return overview
}

// CountStats counts entities and transactions per kind.
func CountStats(ledgers []domain.EntityLedger) domain.DataStats {
	var stats domain.DataStats
	for _, el := range ledgers {
		switch el.Entity.Kind {
		case domain.Customer:
			stats.Customers++
			stats.CustomerTransactions += len(el.Transactions)
		case domain.Supplier:
			stats.Suppliers++
			stats.SupplierTransactions += len(el.Transactions)
		}
	}
	return stats
}
