package handlers_test

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/models"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntityService ---
type MockEntityService struct {
	mock.Mock
}

func (m *MockEntityService) GetEntity(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, kind, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) ListEntities(ctx context.Context, kind domain.EntityKind, query string) ([]domain.EntitySummary, error) {
	args := m.Called(ctx, kind, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntitySummary), args.Error(1)
}
func (m *MockEntityService) CreateEntity(ctx context.Context, kind domain.EntityKind, req dto.CreateEntityRequest) (*domain.Entity, error) {
	args := m.Called(ctx, kind, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) UpdateEntity(ctx context.Context, kind domain.EntityKind, entityID string, req dto.UpdateEntityRequest) (*domain.Entity, error) {
	args := m.Called(ctx, kind, entityID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}
func (m *MockEntityService) DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error {
	return m.Called(ctx, kind, entityID).Error(0)
}

var _ portssvc.EntitySvcFacade = (*MockEntityService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) AddTransaction(ctx context.Context, kind domain.EntityKind, entityID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, kind, entityID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, kind, entityID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error {
	return m.Called(ctx, kind, entityID, transactionID).Error(0)
}

var _ portssvc.TransactionSvc = (*MockTransactionService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedger(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, domain.LedgerView, error) {
	args := m.Called(ctx, kind, entityID)
	if args.Get(0) == nil {
		return nil, domain.LedgerView{}, args.Error(2)
	}
	return args.Get(0).(*domain.Entity), args.Get(1).(domain.LedgerView), args.Error(2)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context) (domain.DashboardSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardSummary), args.Error(1)
}
func (m *MockDashboardService) GetRecentActivity(ctx context.Context, limit int) ([]domain.ActivityItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityItem), args.Error(1)
}
func (m *MockDashboardService) GetMonthlyOverview(ctx context.Context, kind domain.EntityKind) (domain.MonthlyOverview, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(domain.MonthlyOverview), args.Error(1)
}
func (m *MockDashboardService) GetStats(ctx context.Context) (domain.DataStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DataStats), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}
func (m *MockSettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (domain.Settings, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Settings), args.Error(1)
}

var _ portssvc.SettingsSvc = (*MockSettingsService)(nil)

// --- Mock BackupService ---
type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) CreateBackup(ctx context.Context) (*models.Backup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Backup), args.Error(1)
}
func (m *MockBackupService) Restore(ctx context.Context, raw []byte) (*domain.RestoreReport, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestoreReport), args.Error(1)
}
func (m *MockBackupService) Reset(ctx context.Context, confirm string) error {
	return m.Called(ctx, confirm).Error(0)
}

var _ portssvc.BackupSvc = (*MockBackupService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportLedger(ctx context.Context, kind domain.EntityKind, entityID string, format domain.ExportFormat) (*domain.ExportFile, error) {
	args := m.Called(ctx, kind, entityID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock HealthService ---
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.HealthSvc = (*MockHealthService)(nil)
