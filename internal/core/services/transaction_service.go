package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	entityRepo portsrepo.EntityReader
	txnRepo    portsrepo.TransactionRepositoryFacade
	newID      func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionIDGenerator replaces uuid.NewString for new transaction ids.
func WithTransactionIDGenerator(fn func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = fn
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(entityRepo portsrepo.EntityReader, txnRepo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvc {
	svc := &transactionService{
		entityRepo: entityRepo,
		txnRepo:    txnRepo,
		newID:      uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) requireEntity(ctx context.Context, kind domain.EntityKind, entityID string) error {
	if err := requireKind(kind); err != nil {
		return err
	}
	if _, err := s.entityRepo.FindEntityByID(ctx, kind, entityID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entity", slog.String("entity_id", entityID))
		}
		return err
	}
	return nil
}

// save validates txn and writes its normalised form.
func (s *transactionService) save(ctx context.Context, kind domain.EntityKind, entityID string, txn domain.Transaction) (*domain.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	txn = txn.Normalize()
	if err := s.txnRepo.SaveTransaction(ctx, kind, entityID, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("entity_id", entityID),
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}
	return &txn, nil
}

func (s *transactionService) AddTransaction(ctx context.Context, kind domain.EntityKind, entityID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	if err := s.requireEntity(ctx, kind, entityID); err != nil {
		return nil, err
	}
	txn, err := s.save(ctx, kind, entityID, req.ToDomain(s.newID()))
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transaction added",
		slog.String("kind", string(kind)),
		slog.String("entity_id", entityID),
		slog.String("transaction_id", txn.TransactionID))
	return txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	if err := s.requireEntity(ctx, kind, entityID); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.LoadTransactions(ctx, kind, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("entity_id", entityID))
		return nil, err
	}
	found := false
	for _, t := range txns {
		if t.TransactionID == transactionID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}

	txn, err := s.save(ctx, kind, entityID, req.ToDomain(transactionID))
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transaction updated",
		slog.String("entity_id", entityID),
		slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error {
	if err := s.requireEntity(ctx, kind, entityID); err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, kind, entityID, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		}
		return err
	}
	s.LogInfo(ctx, "Transaction deleted",
		slog.String("entity_id", entityID),
		slog.String("transaction_id", transactionID))
	return nil
}
