package services

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/dto"
)

// TransactionSvc records ledger entries against an entity.
type TransactionSvc interface {
	AddTransaction(ctx context.Context, kind domain.EntityKind, entityID string, req dto.TransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error
}

// LedgerSvc computes running balances.
type LedgerSvc interface {
	// GetLedger returns the entity and its computed ledger. Unreadable stored rows
	// are reported inside the view, not as an error.
	GetLedger(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, domain.LedgerView, error)
}

// DashboardSvc reduces every ledger into business-wide figures.
type DashboardSvc interface {
	GetSummary(ctx context.Context) (domain.DashboardSummary, error)
	// GetRecentActivity returns the newest transactions; limit <= 0 uses the configured default.
	GetRecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error)
	GetMonthlyOverview(ctx context.Context, kind domain.EntityKind) (domain.MonthlyOverview, error)
	GetStats(ctx context.Context) (domain.DataStats, error)
}

// ExportSvc renders one ledger as a downloadable file.
type ExportSvc interface {
	// ExportLedger fails with ErrIntegrity when the ledger has unreadable rows.
	ExportLedger(ctx context.Context, kind domain.EntityKind, entityID string, format domain.ExportFormat) (*domain.ExportFile, error)
}
