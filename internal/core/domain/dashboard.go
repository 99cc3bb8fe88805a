package domain

import "github.com/shopspring/decimal"

// EntityLedger pairs an entity with the transactions recorded against it.
// It is the unit the dashboard reductions consume.
type EntityLedger struct {
	Entity       Entity
	Transactions []Transaction
	// Err is set when the transactions could not be loaded at all.
	Err error
}

// FailedEntity is an entity left out of an aggregate because its ledger had unreadable rows.
type FailedEntity struct {
	EntityID string     `json:"entityID"`
	Name     string     `json:"name"`
	Kind     EntityKind `json:"kind"`
	Errors   []RowError `json:"errors"`
}

// DashboardSummary is the business-wide receivable/payable position.
// Both totals are non-negative.
type DashboardSummary struct {
	TotalReceivable decimal.Decimal `json:"totalReceivable"`
	TotalPayable    decimal.Decimal `json:"totalPayable"`
	NetPosition     decimal.Decimal `json:"netPosition"`
	CustomerCount   int             `json:"customerCount"`
	SupplierCount   int             `json:"supplierCount"`
	FailedEntities  []FailedEntity  `json:"failedEntities,omitempty"`
}

// ActivityItem is a transaction tagged with the entity it belongs to.
type ActivityItem struct {
	Transaction
	EntityID   string     `json:"entityID"`
	EntityName string     `json:"entityName"`
	EntityKind EntityKind `json:"entityKind"`
}

// MonthlyTotal sums one calendar month (YYYY-MM) of transactions.
type MonthlyTotal struct {
	Month  string          `json:"month"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	Net    decimal.Decimal `json:"net"`
}

// MonthlyOverview is the per-month series; rows that could not be read are counted, not summed.
type MonthlyOverview struct {
	Months      []MonthlyTotal `json:"months"`
	SkippedRows int            `json:"skippedRows"`
}

// DataStats counts stored records.
type DataStats struct {
	Customers            int `json:"customers"`
	Suppliers            int `json:"suppliers"`
	CustomerTransactions int `json:"customerTransactions"`
	SupplierTransactions int `json:"supplierTransactions"`
}
