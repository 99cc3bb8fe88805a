package mapping

import (
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to its stored form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		Date:       d.Date,
		Particular: d.Particular,
		Debit:      d.Debit,
		Credit:     d.Credit,
	}
}

// ToDomainTransaction converts a stored Transaction back to a domain Transaction.
func ToDomainTransaction(id string, m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          m.Date,
		Particular:    m.Particular,
		Debit:         m.Debit,
		Credit:        m.Credit,
	}
}

// ToDomainTransactions converts a transaction set, in no particular order.
func ToDomainTransactions(set models.TransactionSet) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(set))
	for id, m := range set {
		out = append(out, ToDomainTransaction(id, m))
	}
	return out
}

// ToTransactionSet keys domain transactions by id.
func ToTransactionSet(txns []domain.Transaction) models.TransactionSet {
	set := make(models.TransactionSet, len(txns))
	for _, t := range txns {
		set[t.TransactionID] = ToModelTransaction(t)
	}
	return set
}
