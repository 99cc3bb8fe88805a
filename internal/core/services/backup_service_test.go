package services_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/ledger_book_app/internal/adapters/filestore"
	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/core/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *filestore.Store {
	t.Helper()
	ctx := context.Background()
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.SaveEntity(ctx, domain.Entity{EntityID: "c1", Kind: domain.Customer, Name: "Asha", Phone: "555", CreatedOn: "2024-01-01"}))
	require.NoError(t, store.SaveEntity(ctx, domain.Entity{EntityID: "s1", Kind: domain.Supplier, Name: "Mill", Phone: "777", CreatedOn: "2024-01-02"}))
	require.NoError(t, store.SaveTransaction(ctx, domain.Customer, "c1", domain.Transaction{TransactionID: "t1", Date: "2024-01-03", Particular: "sale", Debit: "0", Credit: "100"}))
	require.NoError(t, store.SaveTransaction(ctx, domain.Supplier, "s1", domain.Transaction{TransactionID: "t2", Date: "2024-01-04", Particular: "buy", Debit: "40", Credit: "0"}))
	require.NoError(t, store.SaveSettings(ctx, domain.SettingsDocument{"theme": json.RawMessage(`"light"`)}))
	return store
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	src := services.NewBackupService(seededStore(t), services.WithBackupClock(func() time.Time { return fixed }))

	backup, err := src.CreateBackup(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.BackupVersion, backup.Version)
	assert.Equal(t, "2024-05-01T10:00:00Z", backup.BackupDate)
	assert.Len(t, backup.Customers, 1)
	assert.JSONEq(t, `"light"`, string(backup.Settings["theme"]))
	assert.Contains(t, backup.Settings, "currency_symbol", "backup carries effective settings")

	raw, err := json.Marshal(backup)
	require.NoError(t, err)

	dstStore, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	dst := services.NewBackupService(dstStore, services.WithBackupClock(func() time.Time { return fixed }))

	report, err := dst.Restore(ctx, raw)
	require.NoError(t, err)
	assert.True(t, report.OK(), "failures: %v", report.Failures)
	assert.True(t, report.SettingsRestored)
	assert.Equal(t, 2, report.EntitiesRestored)
	assert.Equal(t, 2, report.TransactionsRestored)

	again, err := dst.CreateBackup(ctx)
	require.NoError(t, err)
	assert.Equal(t, backup, again)
}

func TestRestore_RejectsMissingKeys(t *testing.T) {
	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)
	svc := services.NewBackupService(store)

	_, err = svc.Restore(context.Background(), []byte(`{"customers":{},"suppliers":{},"settings":{},"customer_transactions":{}}`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "supplier_transactions")

	_, err = svc.Restore(context.Background(), []byte(`[1,2]`))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Present but empty sections are fine.
	report, err := svc.Restore(context.Background(), []byte(`{"customers":{},"suppliers":{},"settings":{},"customer_transactions":{},"supplier_transactions":{}}`))
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestRestore_ReportsPerRecordFailures(t *testing.T) {
	store := seededStore(t)
	svc := services.NewBackupService(store)
	doc := `{
		"customers": {
			"c2": {"name": "Dup", "phone": "555", "created_on": "2024-02-01"},
			"c3": {"name": "", "phone": "999"}
		},
		"suppliers": {},
		"settings": {"theme": "dark", "auto_save_interval": "soon"},
		"customer_transactions": {
			"c1": {"t9": {"date": "2024-02-02", "particular": "merged", "debit": 0, "credit": 5.5}},
			"ghost": {"t1": {"date": "2024-02-02", "particular": "x", "debit": "1", "credit": "0"}}
		},
		"supplier_transactions": {}
	}`

	report, err := svc.Restore(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 0, report.EntitiesRestored)
	assert.Equal(t, 1, report.TransactionsRestored)
	assert.Len(t, report.Failures, 4) // duplicate phone, blank name, bad setting, unknown entity

	txns, err := store.LoadTransactions(context.Background(), domain.Customer, "c1")
	require.NoError(t, err)
	assert.Len(t, txns, 2, "restore merges into the existing ledger")

	settings, err := store.LoadSettings(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `"dark"`, string(settings["theme"]))
	assert.NotContains(t, settings, "auto_save_interval")
}

func TestRestore_RejectsUnaddressableIDs(t *testing.T) {
	store := seededStore(t)
	svc := services.NewBackupService(store)
	doc := `{
		"customers": {
			"../evil": {"name": "Escape", "phone": "101", "created_on": "2024-02-01"},
			"": {"name": "Blank", "phone": "102", "created_on": "2024-02-01"}
		},
		"suppliers": {},
		"settings": {},
		"customer_transactions": {
			"c1": {"a/b": {"date": "2024-02-02", "particular": "x", "debit": "1", "credit": "0"}}
		},
		"supplier_transactions": {}
	}`

	report, err := svc.Restore(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 0, report.EntitiesRestored)
	assert.Equal(t, 0, report.TransactionsRestored)
	require.Len(t, report.Failures, 3)
	for _, f := range report.Failures {
		assert.Contains(t, f.Reason, "invalid id")
	}

	ctx := context.Background()
	summaries, err := services.NewEntityService(store, store).ListEntities(ctx, domain.Customer, "")
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
	_, err = services.NewDashboardService(store, store).GetSummary(ctx)
	require.NoError(t, err)
}

func TestHandEditedBadIDDoesNotBreakAggregates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.json"), []byte(`{
		"c1": {"name": "Asha", "phone": "555", "created_on": "2024-01-01"},
		"../evil": {"name": "Hand edited", "phone": "666", "created_on": "2024-01-01"}
	}`), 0o644))
	store, err := filestore.New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	summaries, err := services.NewEntityService(store, store).ListEntities(ctx, domain.Customer, "")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	for _, es := range summaries {
		assert.Equal(t, es.EntityID == "../evil", es.HasErrors, es.EntityID)
	}

	summary, err := services.NewDashboardService(store, store).GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CustomerCount)
	require.Len(t, summary.FailedEntities, 1)
	assert.Equal(t, "../evil", summary.FailedEntities[0].EntityID)
}

func TestReset(t *testing.T) {
	store := seededStore(t)
	svc := services.NewBackupService(store)

	err := svc.Reset(context.Background(), "confirm")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	entities, err := store.LoadEntities(context.Background(), domain.Customer)
	require.NoError(t, err)
	assert.Len(t, entities, 1, "nothing deleted without confirmation")

	require.NoError(t, svc.Reset(context.Background(), dto.ResetConfirmation))
	entities, err = store.LoadEntities(context.Background(), domain.Customer)
	require.NoError(t, err)
	assert.Empty(t, entities)
}
