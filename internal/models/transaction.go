package models

import "github.com/SscSPs/ledger_book_app/internal/core/domain"

// Transaction is the stored form of a ledger line, keyed by transaction id within
// its entity's transaction set. Amounts are decimal strings but may be JSON
// numbers in older data.
type Transaction struct {
	Date       string        `json:"date"`
	Particular string        `json:"particular"`
	Debit      domain.Amount `json:"debit"`
	Credit     domain.Amount `json:"credit"`
}

// TransactionSet maps transaction id to transaction for one entity.
type TransactionSet map[string]Transaction
