package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/core/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EntityServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockStore *MockLedgerStore
	service   portssvc.EntitySvcFacade
}

func (suite *EntityServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockStore = new(MockLedgerStore)
	suite.service = services.NewEntityService(suite.mockStore, suite.mockStore,
		services.WithEntityIDGenerator(func() string { return "new-id" }),
		services.WithEntityClock(func() string { return "2024-03-01" }),
	)
}

func TestEntityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntityServiceTestSuite))
}

func (suite *EntityServiceTestSuite) TestCreateEntity_Success() {
	req := dto.CreateEntityRequest{Name: " Asha ", Phone: "555-0101", Email: "asha@example.com"}
	want := domain.Entity{EntityID: "new-id", Kind: domain.Customer, Name: "Asha", Phone: "555-0101", Email: "asha@example.com", CreatedOn: "2024-03-01"}

	suite.mockStore.On("FindEntityByPhone", suite.ctx, domain.Customer, "555-0101").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStore.On("SaveEntity", suite.ctx, want).Return(nil).Once()

	created, err := suite.service.CreateEntity(suite.ctx, domain.Customer, req)

	suite.Require().NoError(err)
	suite.Equal(want, *created)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestCreateEntity_DuplicatePhone() {
	existing := &domain.Entity{EntityID: "c1", Kind: domain.Customer, Name: "Other", Phone: "555-0101"}
	suite.mockStore.On("FindEntityByPhone", suite.ctx, domain.Customer, "555-0101").Return(existing, nil).Once()

	_, err := suite.service.CreateEntity(suite.ctx, domain.Customer, dto.CreateEntityRequest{Name: "Asha", Phone: "555-0101"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "customer with phone 555-0101 already exists")
	suite.mockStore.AssertNotCalled(suite.T(), "SaveEntity", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestCreateEntity_Validation() {
	tests := []struct {
		name string
		req  dto.CreateEntityRequest
		msg  string
	}{
		{"missing name", dto.CreateEntityRequest{Phone: "1"}, "name is required"},
		{"blank phone", dto.CreateEntityRequest{Name: "A", Phone: "  "}, "phone is required"},
		{"bad email", dto.CreateEntityRequest{Name: "A", Phone: "1", Email: "nope"}, "email must be a valid email address"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateEntity(suite.ctx, domain.Supplier, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(err.Error(), tt.msg)
		})
	}
	suite.mockStore.AssertNotCalled(suite.T(), "SaveEntity", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestCreateEntity_UnknownKind() {
	_, err := suite.service.CreateEntity(suite.ctx, domain.EntityKind("vendor"), dto.CreateEntityRequest{Name: "A", Phone: "1"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EntityServiceTestSuite) TestUpdateEntity_PreservesCreatedOn() {
	stored := &domain.Entity{EntityID: "s1", Kind: domain.Supplier, Name: "Mill", Phone: "555", CreatedOn: "2023-06-01"}
	want := domain.Entity{EntityID: "s1", Kind: domain.Supplier, Name: "Mill & Co", Phone: "555", Address: "Dock 4", CreatedOn: "2023-06-01"}

	suite.mockStore.On("FindEntityByID", suite.ctx, domain.Supplier, "s1").Return(stored, nil).Once()
	// Keeping its own phone is not a conflict.
	suite.mockStore.On("FindEntityByPhone", suite.ctx, domain.Supplier, "555").Return(stored, nil).Once()
	suite.mockStore.On("SaveEntity", suite.ctx, want).Return(nil).Once()

	updated, err := suite.service.UpdateEntity(suite.ctx, domain.Supplier, "s1", dto.UpdateEntityRequest{Name: "Mill & Co", Phone: "555", Address: "Dock 4"})

	suite.Require().NoError(err)
	suite.Equal(want, *updated)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EntityServiceTestSuite) TestUpdateEntity_PhoneTakenByOther() {
	stored := &domain.Entity{EntityID: "s1", Kind: domain.Supplier, Name: "Mill", Phone: "555", CreatedOn: "2023-06-01"}
	other := &domain.Entity{EntityID: "s2", Kind: domain.Supplier, Name: "Farm", Phone: "777"}
	suite.mockStore.On("FindEntityByID", suite.ctx, domain.Supplier, "s1").Return(stored, nil).Once()
	suite.mockStore.On("FindEntityByPhone", suite.ctx, domain.Supplier, "777").Return(other, nil).Once()

	_, err := suite.service.UpdateEntity(suite.ctx, domain.Supplier, "s1", dto.UpdateEntityRequest{Name: "Mill", Phone: "777"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockStore.AssertNotCalled(suite.T(), "SaveEntity", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestUpdateEntity_NotFound() {
	suite.mockStore.On("FindEntityByID", suite.ctx, domain.Customer, "missing").Return(nil, apperrors.ErrNotFound).Once()
	_, err := suite.service.UpdateEntity(suite.ctx, domain.Customer, "missing", dto.UpdateEntityRequest{Name: "A", Phone: "1"})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntityServiceTestSuite) TestDeleteEntity_PropagatesStoreError() {
	storeErr := apperrors.NewAppError(500, "disk full", errors.New("ENOSPC"))
	suite.mockStore.On("DeleteEntity", suite.ctx, domain.Customer, "c1").Return(storeErr).Once()

	err := suite.service.DeleteEntity(suite.ctx, domain.Customer, "c1")
	suite.ErrorIs(err, apperrors.ErrStorage)
}

func (suite *EntityServiceTestSuite) TestListEntities_FiltersSortsAndComputesBalances() {
	entities := []domain.Entity{
		{EntityID: "c3", Kind: domain.Customer, Name: "zeta traders", Phone: "900-111"},
		{EntityID: "c1", Kind: domain.Customer, Name: "Asha", Phone: "555-0101"},
		{EntityID: "c2", Kind: domain.Customer, Name: "Bilal", Phone: "555-0102"},
	}
	suite.mockStore.On("LoadEntities", suite.ctx, domain.Customer).Return(entities, nil)
	suite.mockStore.On("LoadTransactions", suite.ctx, domain.Customer, "c1").Return([]domain.Transaction{
		{TransactionID: "t1", Date: "2024-01-01", Particular: "sale", Credit: "100"},
		{TransactionID: "t2", Date: "2024-01-02", Particular: "pay", Debit: "40"},
	}, nil)
	suite.mockStore.On("LoadTransactions", suite.ctx, domain.Customer, "c2").Return([]domain.Transaction{
		{TransactionID: "t3", Date: "2024-01-01", Particular: "legacy", Credit: "abc"},
	}, nil)
	suite.mockStore.On("LoadTransactions", suite.ctx, domain.Customer, "c3").Return([]domain.Transaction{}, nil)

	all, err := suite.service.ListEntities(suite.ctx, domain.Customer, "")
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.Equal([]string{"c1", "c2", "c3"}, []string{all[0].EntityID, all[1].EntityID, all[2].EntityID})
	suite.Equal("60", all[0].Balance.String())
	suite.Equal(domain.StatusDue, all[0].Status)
	suite.True(all[1].HasErrors)
	suite.Equal(domain.StatusSettled, all[2].Status)

	byName, err := suite.service.ListEntities(suite.ctx, domain.Customer, "ZETA")
	suite.Require().NoError(err)
	suite.Require().Len(byName, 1)
	suite.Equal("c3", byName[0].EntityID)

	byPhone, err := suite.service.ListEntities(suite.ctx, domain.Customer, "555-01")
	suite.Require().NoError(err)
	suite.Len(byPhone, 2)
}
