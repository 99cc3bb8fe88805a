// Package storetest holds the behaviour every LedgerStore backend must share.
// Backend tests call Run with a factory that returns an empty store.
package storetest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// LedgerStoreSuite exercises a LedgerStore through its port only.
type LedgerStoreSuite struct {
	suite.Suite
	NewStore func(t *testing.T) portsrepo.LedgerStore

	ctx   context.Context
	store portsrepo.LedgerStore
}

// Run executes the suite against stores built by newStore.
func Run(t *testing.T, newStore func(t *testing.T) portsrepo.LedgerStore) {
	suite.Run(t, &LedgerStoreSuite{NewStore: newStore})
}

func (s *LedgerStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore(s.T())
}

func customer(id, name, phone string) domain.Entity {
	return domain.Entity{EntityID: id, Kind: domain.Customer, Name: name, Phone: phone, CreatedOn: "2024-01-01"}
}

func supplier(id, name, phone string) domain.Entity {
	return domain.Entity{EntityID: id, Kind: domain.Supplier, Name: name, Phone: phone, CreatedOn: "2024-01-01"}
}

func (s *LedgerStoreSuite) TestEmptyStore() {
	entities, err := s.store.LoadEntities(s.ctx, domain.Customer)
	s.Require().NoError(err)
	s.Empty(entities)

	txns, err := s.store.LoadTransactions(s.ctx, domain.Customer, "nobody")
	s.Require().NoError(err)
	s.Empty(txns)

	doc, err := s.store.LoadSettings(s.ctx)
	s.Require().NoError(err)
	s.Empty(doc)

	s.NoError(s.store.Ping(s.ctx))
}

func (s *LedgerStoreSuite) TestSaveAndFindEntity() {
	e := customer("c1", "Asha", "555-0101")
	e.Email = "asha@example.com"
	e.Address = "1 Market Rd"
	s.Require().NoError(s.store.SaveEntity(s.ctx, e))

	got, err := s.store.FindEntityByID(s.ctx, domain.Customer, "c1")
	s.Require().NoError(err)
	s.Equal(e, *got)

	all, err := s.store.LoadEntities(s.ctx, domain.Customer)
	s.Require().NoError(err)
	s.Equal([]domain.Entity{e}, all)

	none, err := s.store.LoadEntities(s.ctx, domain.Supplier)
	s.Require().NoError(err)
	s.Empty(none)

	_, err = s.store.FindEntityByID(s.ctx, domain.Supplier, "c1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerStoreSuite) TestSaveEntityReplaces() {
	s.Require().NoError(s.store.SaveEntity(s.ctx, customer("c1", "Asha", "555-0101")))
	updated := customer("c1", "Asha K", "555-0199")
	s.Require().NoError(s.store.SaveEntity(s.ctx, updated))

	got, err := s.store.FindEntityByID(s.ctx, domain.Customer, "c1")
	s.Require().NoError(err)
	s.Equal("Asha K", got.Name)

	_, err = s.store.FindEntityByPhone(s.ctx, domain.Customer, "555-0101")
	s.ErrorIs(err, apperrors.ErrNotFound, "old phone is released")

	byPhone, err := s.store.FindEntityByPhone(s.ctx, domain.Customer, "555-0199")
	s.Require().NoError(err)
	s.Equal("c1", byPhone.EntityID)
}

func (s *LedgerStoreSuite) TestPhoneUniquePerKind() {
	s.Require().NoError(s.store.SaveEntity(s.ctx, customer("c1", "Asha", "555-0101")))

	err := s.store.SaveEntity(s.ctx, customer("c2", "Other", "555-0101"))
	s.ErrorIs(err, apperrors.ErrDuplicate)
	_, err = s.store.FindEntityByID(s.ctx, domain.Customer, "c2")
	s.ErrorIs(err, apperrors.ErrNotFound, "rejected entity is not stored")

	s.NoError(s.store.SaveEntity(s.ctx, supplier("s1", "Mill", "555-0101")), "a supplier may share a customer's phone")

	found, err := s.store.FindEntityByPhone(s.ctx, domain.Supplier, "555-0101")
	s.Require().NoError(err)
	s.Equal("s1", found.EntityID)
}

func (s *LedgerStoreSuite) TestTransactions() {
	s.Require().NoError(s.store.SaveEntity(s.ctx, customer("c1", "Asha", "555-0101")))
	t1 := domain.Transaction{TransactionID: "t1", Date: "2024-01-05", Particular: "sale", Debit: "0", Credit: "100.0"}
	t2 := domain.Transaction{TransactionID: "t2", Date: "2024-01-01", Particular: "payment", Debit: "50", Credit: "0"}
	s.Require().NoError(s.store.SaveTransaction(s.ctx, domain.Customer, "c1", t1))
	s.Require().NoError(s.store.SaveTransaction(s.ctx, domain.Customer, "c1", t2))

	got, err := s.store.LoadTransactions(s.ctx, domain.Customer, "c1")
	s.Require().NoError(err)
	s.ElementsMatch([]domain.Transaction{t1, t2}, got)

	t1.Particular = "sale (corrected)"
	s.Require().NoError(s.store.SaveTransaction(s.ctx, domain.Customer, "c1", t1))
	got, err = s.store.LoadTransactions(s.ctx, domain.Customer, "c1")
	s.Require().NoError(err)
	s.ElementsMatch([]domain.Transaction{t1, t2}, got)

	s.Require().NoError(s.store.DeleteTransaction(s.ctx, domain.Customer, "c1", "t2"))
	got, err = s.store.LoadTransactions(s.ctx, domain.Customer, "c1")
	s.Require().NoError(err)
	s.Equal([]domain.Transaction{t1}, got)

	s.ErrorIs(s.store.DeleteTransaction(s.ctx, domain.Customer, "c1", "t2"), apperrors.ErrNotFound)
}

func (s *LedgerStoreSuite) TestMalformedAmountSurvivesRoundTrip() {
	s.Require().NoError(s.store.SaveEntity(s.ctx, customer("c1", "Asha", "555-0101")))
	bad := domain.Transaction{TransactionID: "legacy", Date: "2024-01-01", Particular: "old", Debit: "abc", Credit: "0"}
	s.Require().NoError(s.store.SaveTransaction(s.ctx, domain.Customer, "c1", bad))

	got, err := s.store.LoadTransactions(s.ctx, domain.Customer, "c1")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(domain.Amount("abc"), got[0].Debit)
}

func (s *LedgerStoreSuite) TestDeleteEntityCascades() {
	s.Require().NoError(s.store.SaveEntity(s.ctx, customer("c1", "Asha", "555-0101")))
	s.Require().NoError(s.store.SaveEntity(s.ctx, customer("c2", "Ben", "555-0102")))
	s.Require().NoError(s.store.SaveTransaction(s.ctx, domain.Customer, "c1", domain.Transaction{TransactionID: "t1", Date: "2024-01-01", Particular: "x", Credit: "1"}))
	s.Require().NoError(s.store.SaveTransaction(s.ctx, domain.Customer, "c2", domain.Transaction{TransactionID: "t2", Date: "2024-01-01", Particular: "y", Credit: "2"}))

	s.Require().NoError(s.store.DeleteEntity(s.ctx, domain.Customer, "c1"))

	_, err := s.store.FindEntityByID(s.ctx, domain.Customer, "c1")
	s.ErrorIs(err, apperrors.ErrNotFound)
	txns, err := s.store.LoadTransactions(s.ctx, domain.Customer, "c1")
	s.Require().NoError(err)
	s.Empty(txns)
	_, err = s.store.FindEntityByPhone(s.ctx, domain.Customer, "555-0101")
	s.ErrorIs(err, apperrors.ErrNotFound)

	other, err := s.store.LoadTransactions(s.ctx, domain.Customer, "c2")
	s.Require().NoError(err)
	s.Len(other, 1, "other entities keep their ledgers")

	s.ErrorIs(s.store.DeleteEntity(s.ctx, domain.Customer, "c1"), apperrors.ErrNotFound)
}

func (s *LedgerStoreSuite) TestSettingsRoundTrip() {
	doc := domain.SettingsDocument{
		"currency_symbol": json.RawMessage(`"$"`),
		"legacy_flag":     json.RawMessage(`true`),
	}
	s.Require().NoError(s.store.SaveSettings(s.ctx, doc))

	got, err := s.store.LoadSettings(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	assert.JSONEq(s.T(), `"$"`, string(got["currency_symbol"]))
	assert.JSONEq(s.T(), `true`, string(got["legacy_flag"]))
}

func (s *LedgerStoreSuite) TestReset() {
	s.Require().NoError(s.store.SaveEntity(s.ctx, customer("c1", "Asha", "555-0101")))
	s.Require().NoError(s.store.SaveEntity(s.ctx, supplier("s1", "Mill", "555-0201")))
	s.Require().NoError(s.store.SaveTransaction(s.ctx, domain.Supplier, "s1", domain.Transaction{TransactionID: "t1", Date: "2024-01-01", Particular: "x", Debit: "1"}))
	s.Require().NoError(s.store.SaveSettings(s.ctx, domain.SettingsDocument{"theme": json.RawMessage(`"light"`)}))

	s.Require().NoError(s.store.Reset(s.ctx))

	for _, kind := range domain.EntityKinds {
		entities, err := s.store.LoadEntities(s.ctx, kind)
		s.Require().NoError(err)
		s.Empty(entities)
	}
	txns, err := s.store.LoadTransactions(s.ctx, domain.Supplier, "s1")
	s.Require().NoError(err)
	s.Empty(txns)
	doc, err := s.store.LoadSettings(s.ctx)
	s.Require().NoError(err)
	s.Empty(doc)

	s.NoError(s.store.SaveEntity(s.ctx, customer("c9", "After", "555-0101")), "store is usable after reset")
}
