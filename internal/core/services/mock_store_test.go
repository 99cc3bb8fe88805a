package services_test

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockLedgerStore is a mock type for the LedgerStore interface
type MockLedgerStore struct {
	mock.Mock
}

var _ portsrepo.LedgerStore = (*MockLedgerStore)(nil)

func (m *MockLedgerStore) LoadEntities(ctx context.Context, kind domain.EntityKind) ([]domain.Entity, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entity), args.Error(1)
}

func (m *MockLedgerStore) FindEntityByID(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error) {
	args := m.Called(ctx, kind, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockLedgerStore) FindEntityByPhone(ctx context.Context, kind domain.EntityKind, phone string) (*domain.Entity, error) {
	args := m.Called(ctx, kind, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockLedgerStore) SaveEntity(ctx context.Context, entity domain.Entity) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockLedgerStore) DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error {
	return m.Called(ctx, kind, entityID).Error(0)
}

func (m *MockLedgerStore) LoadTransactions(ctx context.Context, kind domain.EntityKind, entityID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, kind, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerStore) SaveTransaction(ctx context.Context, kind domain.EntityKind, entityID string, txn domain.Transaction) error {
	return m.Called(ctx, kind, entityID, txn).Error(0)
}

func (m *MockLedgerStore) DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error {
	return m.Called(ctx, kind, entityID, transactionID).Error(0)
}

func (m *MockLedgerStore) LoadSettings(ctx context.Context) (domain.SettingsDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.SettingsDocument), args.Error(1)
}

func (m *MockLedgerStore) SaveSettings(ctx context.Context, doc domain.SettingsDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockLedgerStore) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockLedgerStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
