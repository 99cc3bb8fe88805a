package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/models"
	"github.com/SscSPs/ledger_book_app/internal/utils/mapping"
)

type backupService struct {
	BaseService
	store portsrepo.LedgerStore
	now   func() time.Time
}

// BackupServiceOption is a functional option for configuring the backup service
type BackupServiceOption func(*backupService)

// WithBackupClock replaces time.Now for the backup_date field.
func WithBackupClock(fn func() time.Time) BackupServiceOption {
	return func(s *backupService) {
		s.now = fn
	}
}

// NewBackupService creates a backup service over the whole store.
func NewBackupService(store portsrepo.LedgerStore, options ...BackupServiceOption) portssvc.BackupSvc {
	svc := &backupService{store: store, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BackupSvc = (*backupService)(nil)

func (s *backupService) CreateBackup(ctx context.Context) (*models.Backup, error) {
	doc, err := s.store.LoadSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for backup")
		return nil, err
	}
	settings, _ := domain.MergeSettings(doc)
	settingsDoc, err := settings.Document(doc)
	if err != nil {
		return nil, err
	}

	backup := &models.Backup{
		Customers:            models.EntityCollection{},
		Suppliers:            models.EntityCollection{},
		Settings:             settingsDoc,
		CustomerTransactions: map[string]models.TransactionSet{},
		SupplierTransactions: map[string]models.TransactionSet{},
		BackupDate:           s.now().Format(time.RFC3339),
		Version:              domain.BackupVersion,
	}

	for _, kind := range domain.EntityKinds {
		entities, err := s.store.LoadEntities(ctx, kind)
		if err != nil {
			s.LogError(ctx, err, "Failed to load entities for backup", slog.String("kind", string(kind)))
			return nil, err
		}
		collection, txnSets := backup.EntitiesFor(kind), backup.TransactionsFor(kind)
		for _, e := range entities {
			collection[e.EntityID] = mapping.ToModelEntity(e)
			txns, err := s.store.LoadTransactions(ctx, kind, e.EntityID)
			if err != nil {
				s.LogError(ctx, err, "Failed to load transactions for backup", slog.String("entity_id", e.EntityID))
				return nil, err
			}
			txnSets[e.EntityID] = mapping.ToTransactionSet(txns)
		}
	}

	s.LogInfo(ctx, "Backup created",
		slog.Int("customers", len(backup.Customers)),
		slog.Int("suppliers", len(backup.Suppliers)))
	return backup, nil
}

// parseBackup checks key presence before decoding so a document with an empty
// but present section is accepted and one missing a section is not.
func parseBackup(raw []byte) (*models.Backup, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil || sections == nil {
		return nil, fmt.Errorf("%w: backup is not a JSON object", apperrors.ErrValidation)
	}
	var missing []string
	for _, key := range domain.BackupRequiredKeys {
		if _, ok := sections[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: invalid backup file format, missing %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	var backup models.Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return nil, fmt.Errorf("%w: invalid backup file format: %v", apperrors.ErrValidation, err)
	}
	return &backup, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *backupService) Restore(ctx context.Context, raw []byte) (*domain.RestoreReport, error) {
	backup, err := parseBackup(raw)
	if err != nil {
		return nil, err
	}
	report := &domain.RestoreReport{}
	fail := func(f domain.RestoreFailure) {
		report.Failures = append(report.Failures, f)
		s.LogWarn(ctx, "Restore record failed", slog.String("record", f.String()))
	}

	s.restoreSettings(ctx, backup.Settings, report, fail)

	for _, kind := range domain.EntityKinds {
		collection := backup.EntitiesFor(kind)
		for _, id := range sortedKeys(collection) {
			entity := mapping.ToDomainEntity(kind, id, collection[id])
			if entity.CreatedOn == "" {
				entity.CreatedOn = domain.Today()
			}
			if err := entity.Validate(); err != nil {
				fail(domain.RestoreFailure{Kind: kind, EntityID: id, Reason: err.Error()})
				continue
			}
			if err := s.store.SaveEntity(ctx, entity); err != nil {
				fail(domain.RestoreFailure{Kind: kind, EntityID: id, Reason: err.Error()})
				continue
			}
			report.EntitiesRestored++
		}

		txnSets := backup.TransactionsFor(kind)
		for _, entityID := range sortedKeys(txnSets) {
			if _, err := s.store.FindEntityByID(ctx, kind, entityID); err != nil {
				fail(domain.RestoreFailure{Kind: kind, EntityID: entityID, Reason: "transactions skipped: " + err.Error()})
				continue
			}
			set := txnSets[entityID]
			// Amounts are written as found; unreadable ones surface as ledger row errors.
			for _, txnID := range sortedKeys(set) {
				if err := domain.ValidateRecordID(txnID); err != nil {
					fail(domain.RestoreFailure{Kind: kind, EntityID: entityID, TransactionID: txnID, Reason: err.Error()})
					continue
				}
				txn := mapping.ToDomainTransaction(txnID, set[txnID])
				if err := s.store.SaveTransaction(ctx, kind, entityID, txn); err != nil {
					fail(domain.RestoreFailure{Kind: kind, EntityID: entityID, TransactionID: txnID, Reason: err.Error()})
					continue
				}
				report.TransactionsRestored++
			}
		}
	}

	s.LogInfo(ctx, "Restore finished",
		slog.Int("entities", report.EntitiesRestored),
		slog.Int("transactions", report.TransactionsRestored),
		slog.Int("failures", len(report.Failures)))
	return report, nil
}

// restoreSettings overlays the backed-up keys onto the stored document. Keys
// with values of the wrong type are reported and left out.
func (s *backupService) restoreSettings(ctx context.Context, incoming domain.SettingsDocument, report *domain.RestoreReport, fail func(domain.RestoreFailure)) {
	current, err := s.store.LoadSettings(ctx)
	if err != nil {
		fail(domain.RestoreFailure{Reason: "settings: " + err.Error()})
		return
	}
	merged := domain.SettingsDocument{}
	for k, v := range current {
		merged[k] = v
	}
	for _, k := range sortedKeys(incoming) {
		if _, invalid := domain.MergeSettings(domain.SettingsDocument{k: incoming[k]}); len(invalid) > 0 {
			fail(domain.RestoreFailure{Reason: fmt.Sprintf("settings: invalid value for %s", k)})
			continue
		}
		merged[k] = incoming[k]
	}
	if err := s.store.SaveSettings(ctx, merged); err != nil {
		fail(domain.RestoreFailure{Reason: "settings: " + err.Error()})
		return
	}
	report.SettingsRestored = true
}

func (s *backupService) Reset(ctx context.Context, confirm string) error {
	if confirm != dto.ResetConfirmation {
		return fmt.Errorf("%w: type %s to confirm the reset", apperrors.ErrValidation, dto.ResetConfirmation)
	}
	if err := s.store.Reset(ctx); err != nil {
		s.LogError(ctx, err, "Failed to reset data")
		return err
	}
	s.LogInfo(ctx, "All data reset")
	return nil
}
