package repositories

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
)

// TransactionReader defines read operations for ledger lines.
type TransactionReader interface {
	// LoadTransactions returns the complete current transaction set of one entity,
	// in no particular order. An entity with no transactions yields an empty slice.
	LoadTransactions(ctx context.Context, kind domain.EntityKind, entityID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger lines.
type TransactionWriter interface {
	// SaveTransaction inserts or replaces the transaction stored under txn.TransactionID.
	SaveTransaction(ctx context.Context, kind domain.EntityKind, entityID string, txn domain.Transaction) error

	// DeleteTransaction returns apperrors.ErrNotFound when the transaction does not exist.
	DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error
}

// TransactionRepositoryFacade combines transaction reads and writes.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
