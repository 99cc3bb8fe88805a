package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/utils/accounting"
)

type dashboardService struct {
	BaseService
	entityRepo  portsrepo.EntityReader
	txnRepo     portsrepo.TransactionReader
	convention  domain.BalanceConvention
	recentLimit int
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// WithDashboardBalanceConvention sets the supplier sign convention.
func WithDashboardBalanceConvention(c domain.BalanceConvention) DashboardServiceOption {
	return func(s *dashboardService) {
		s.convention = c
	}
}

// WithRecentActivityLimit sets the default size of the activity feed.
func WithRecentActivityLimit(limit int) DashboardServiceOption {
	return func(s *dashboardService) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(entityRepo portsrepo.EntityReader, txnRepo portsrepo.TransactionReader, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardService{
		entityRepo:  entityRepo,
		txnRepo:     txnRepo,
		convention:  domain.CreditMinusDebit,
		recentLimit: accounting.DefaultRecentLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) load(ctx context.Context, kinds ...domain.EntityKind) ([]domain.EntityLedger, error) {
	ledgers, err := loadEntityLedgers(ctx, s.entityRepo, s.txnRepo, kinds...)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledgers")
		return nil, err
	}
	return ledgers, nil
}

func (s *dashboardService) GetSummary(ctx context.Context) (domain.DashboardSummary, error) {
	ledgers, err := s.load(ctx, domain.EntityKinds...)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	summary, err := accounting.AggregateBalances(ledgers, s.convention)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	for _, f := range summary.FailedEntities {
		s.LogWarn(ctx, "Entity left out of dashboard totals",
			slog.String("kind", string(f.Kind)),
			slog.String("entity_id", f.EntityID),
			slog.Int("row_errors", len(f.Errors)))
	}
	return summary, nil
}

func (s *dashboardService) GetRecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	if limit <= 0 {
		limit = s.recentLimit
	}
	ledgers, err := s.load(ctx, domain.EntityKinds...)
	if err != nil {
		return nil, err
	}
	return accounting.RecentActivity(ledgers, limit), nil
}

// GetMonthlyOverview covers one kind, or both when kind is empty.
func (s *dashboardService) GetMonthlyOverview(ctx context.Context, kind domain.EntityKind) (domain.MonthlyOverview, error) {
	kinds := domain.EntityKinds
	if kind != "" {
		if err := requireKind(kind); err != nil {
			return domain.MonthlyOverview{}, err
		}
		kinds = []domain.EntityKind{kind}
	}
	ledgers, err := s.load(ctx, kinds...)
	if err != nil {
		return domain.MonthlyOverview{}, err
	}
	var all []domain.Transaction
	for _, el := range ledgers {
		all = append(all, el.Transactions...)
	}
	overview := accounting.MonthlySummary(all)
	if overview.SkippedRows > 0 {
		s.LogWarn(ctx, "Monthly overview skipped unreadable rows", slog.Int("skipped_rows", overview.SkippedRows))
	}
	return overview, nil
}

func (s *dashboardService) GetStats(ctx context.Context) (domain.DataStats, error) {
	ledgers, err := s.load(ctx, domain.EntityKinds...)
	if err != nil {
		return domain.DataStats{}, err
	}
	return accounting.CountStats(ledgers), nil
}
