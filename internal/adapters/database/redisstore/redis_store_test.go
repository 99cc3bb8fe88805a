package redisstore_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledger_book_app/internal/adapters/database/redisstore"
	"github.com/SscSPs/ledger_book_app/internal/adapters/storetest"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, prefix string) (*redisstore.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	store := redisstore.New(redisstore.NewClient([]string{mr.Addr()}, "", false), prefix)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) portsrepo.LedgerStore {
		store, _ := newStore(t, "")
		return store
	})
}

func TestRedisStore_KeyLayout(t *testing.T) {
	store, mr := newStore(t, "books")
	ctx := context.Background()

	require.NoError(t, store.SaveEntity(ctx, domain.Entity{EntityID: "c1", Kind: domain.Customer, Name: "Asha", Phone: "555", CreatedOn: "2024-01-01"}))
	require.NoError(t, store.SaveTransaction(ctx, domain.Customer, "c1", domain.Transaction{TransactionID: "t1", Date: "2024-01-02", Particular: "sale", Credit: "10"}))

	assert.True(t, mr.Exists("{books}:customer:entities"))
	assert.Equal(t, "c1", mr.HGet("{books}:customer:phones", "555"))
	assert.JSONEq(t, `{"date":"2024-01-02","particular":"sale","debit":"","credit":"10"}`, mr.HGet("{books}:customer:txns:c1", "t1"))
}

func TestRedisStore_ResetOnlyTouchesPrefix(t *testing.T) {
	store, mr := newStore(t, "books")
	ctx := context.Background()
	require.NoError(t, mr.Set("unrelated", "keep"))
	require.NoError(t, store.SaveEntity(ctx, domain.Entity{EntityID: "c1", Kind: domain.Customer, Name: "Asha", Phone: "555", CreatedOn: "2024-01-01"}))

	require.NoError(t, store.Reset(ctx))

	assert.False(t, mr.Exists("{books}:customer:entities"))
	got, err := mr.Get("unrelated")
	require.NoError(t, err)
	assert.Equal(t, "keep", got)
}

func TestRedisStore_PingFailsWhenServerGone(t *testing.T) {
	store, mr := newStore(t, "")
	require.NoError(t, store.Ping(context.Background()))
	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
