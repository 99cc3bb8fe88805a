package models

import "github.com/SscSPs/ledger_book_app/internal/core/domain"

// Backup is the full-system export document.
type Backup struct {
	Customers            EntityCollection          `json:"customers"`
	Suppliers            EntityCollection          `json:"suppliers"`
	Settings             domain.SettingsDocument   `json:"settings"`
	CustomerTransactions map[string]TransactionSet `json:"customer_transactions"`
	SupplierTransactions map[string]TransactionSet `json:"supplier_transactions"`
	BackupDate           string                    `json:"backup_date,omitempty"`
	Version              string                    `json:"version,omitempty"`
}

// EntitiesFor returns the collection of the given kind.
func (b *Backup) EntitiesFor(kind domain.EntityKind) EntityCollection {
	if kind == domain.Supplier {
		return b.Suppliers
	}
	return b.Customers
}

// TransactionsFor returns the per-entity transaction sets of the given kind.
func (b *Backup) TransactionsFor(kind domain.EntityKind) map[string]TransactionSet {
	if kind == domain.Supplier {
		return b.SupplierTransactions
	}
	return b.CustomerTransactions
}
