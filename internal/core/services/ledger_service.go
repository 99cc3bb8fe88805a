package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/utils/accounting"
)

type ledgerService struct {
	BaseService
	entityRepo portsrepo.EntityReader
	txnRepo    portsrepo.TransactionReader
	convention domain.BalanceConvention
}

// NewLedgerService creates a ledger service computing supplier balances with convention.
func NewLedgerService(entityRepo portsrepo.EntityReader, txnRepo portsrepo.TransactionReader, convention domain.BalanceConvention) portssvc.LedgerSvc {
	return &ledgerService{entityRepo: entityRepo, txnRepo: txnRepo, convention: convention}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) GetLedger(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, domain.LedgerView, error) {
	if err := requireKind(kind); err != nil {
		return nil, domain.LedgerView{}, err
	}
	entity, err := s.entityRepo.FindEntityByID(ctx, kind, entityID)
	if err != nil {
		return nil, domain.LedgerView{}, err
	}
	txns, err := s.txnRepo.LoadTransactions(ctx, kind, entityID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("entity_id", entityID))
		return nil, domain.LedgerView{}, err
	}

	view, err := accounting.ComputeLedger(txns, kind, s.convention)
	if err != nil {
		return nil, domain.LedgerView{}, err
	}
	if view.HasErrors() {
		s.LogWarn(ctx, "Ledger has unreadable rows",
			slog.String("entity_id", entityID),
			slog.String("error", view.Err().Error()))
	}
	s.LogDebug(ctx, "Ledger computed",
		slog.String("entity_id", entityID),
		slog.Int("rows", len(view.Rows)),
		slog.String("final_balance", view.FinalBalance.String()))
	return entity, view, nil
}

// loadEntityLedgers reads every entity of the given kinds with its transactions.
func loadEntityLedgers(ctx context.Context, entityRepo portsrepo.EntityReader, txnRepo portsrepo.TransactionReader, kinds ...domain.EntityKind) ([]domain.EntityLedger, error) {
	var ledgers []domain.EntityLedger
	for _, kind := range kinds {
		entities, err := entityRepo.LoadEntities(ctx, kind)
		if err != nil {
			return nil, err
		}
		for _, e := range entities {
			txns, err := txnRepo.LoadTransactions(ctx, kind, e.EntityID)
			if err != nil {
				// A record the store cannot address is reported with its ledger, not fatal.
				if !errors.Is(err, apperrors.ErrValidation) {
					return nil, err
				}
				ledgers = append(ledgers, domain.EntityLedger{Entity: e, Err: err})
				continue
			}
			ledgers = append(ledgers, domain.EntityLedger{Entity: e, Transactions: txns})
		}
	}
	return ledgers, nil
}
