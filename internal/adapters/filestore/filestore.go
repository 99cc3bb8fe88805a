// Package filestore persists the ledger as JSON files under one data directory:
//
//	customers.json                     entity id -> entity
//	suppliers.json
//	settings.json
//	customer_transactions/<id>.json    transaction id -> transaction
//	supplier_transactions/<id>.json
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_book_app/internal/models"
	"github.com/SscSPs/ledger_book_app/internal/utils/mapping"
)

const settingsFile = "settings.json"

// Store is a LedgerStore over flat JSON files. It is safe for concurrent use
// within one process; every write replaces its file atomically.
type Store struct {
	dir string
	mu  sync.RWMutex
}

var _ portsrepo.LedgerStore = (*Store)(nil)

// New creates the data directory layout under dir if it does not exist.
func New(dir string) (*Store, error) {
	for _, sub := range []string{"", transactionsDir(domain.Customer), transactionsDir(domain.Supplier)} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, storageErr("failed to create data directory", err)
		}
	}
	return &Store{dir: dir}, nil
}

func storageErr(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

func entitiesFile(kind domain.EntityKind) string {
	return string(kind) + "s.json"
}

func transactionsDir(kind domain.EntityKind) string {
	return string(kind) + "_transactions"
}

func (s *Store) transactionsPath(kind domain.EntityKind, entityID string) (string, error) {
	// Ids come from request paths and backup files; keep them inside the data directory.
	if err := domain.ValidateRecordID(entityID); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, transactionsDir(kind), entityID+".json"), nil
}

// readJSON decodes path into v. A missing file leaves v untouched and is not an error.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return storageErr("failed to read "+filepath.Base(path), err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return storageErr("failed to parse "+filepath.Base(path), err)
	}
	return nil
}

// writeJSON replaces path with the encoding of v via a temp file and rename,
// so readers never observe a half-written file.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return storageErr("failed to encode "+filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return storageErr("failed to create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return storageErr("failed to write "+filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return storageErr("failed to write "+filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return storageErr("failed to replace "+filepath.Base(path), err)
	}
	return nil
}

func (s *Store) loadCollection(kind domain.EntityKind) (models.EntityCollection, error) {
	c := models.EntityCollection{}
	if err := readJSON(filepath.Join(s.dir, entitiesFile(kind)), &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) loadSet(kind domain.EntityKind, entityID string) (models.TransactionSet, string, error) {
	path, err := s.transactionsPath(kind, entityID)
	if err != nil {
		return nil, "", err
	}
	set := models.TransactionSet{}
	if err := readJSON(path, &set); err != nil {
		return nil, "", err
	}
	return set, path, nil
}

// LoadEntities implements portsrepo.EntityReader.
func (s *Store) LoadEntities(ctx context.Context, kind domain.EntityKind) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.loadCollection(kind)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEntities(kind, c), nil
}

// FindEntityByID implements portsrepo.EntityReader.
func (s *Store) FindEntityByID(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.loadCollection(kind)
	if err != nil {
		return nil, err
	}
	m, ok := c[entityID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	e := mapping.ToDomainEntity(kind, entityID, m)
	return &e, nil
}

// FindEntityByPhone scans the whole collection.
func (s *Store) FindEntityByPhone(ctx context.Context, kind domain.EntityKind, phone string) (*domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.loadCollection(kind)
	if err != nil {
		return nil, err
	}
	for id, m := range c {
		if m.Phone == phone {
			e := mapping.ToDomainEntity(kind, id, m)
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// SaveEntity implements portsrepo.EntityWriter.
func (s *Store) SaveEntity(ctx context.Context, entity domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.loadCollection(entity.Kind)
	if err != nil {
		return err
	}
	for id, m := range c {
		if id != entity.EntityID && m.Phone == entity.Phone {
			return fmt.Errorf("%w: %s with phone %s already exists", apperrors.ErrDuplicate, entity.Kind, entity.Phone)
		}
	}
	c[entity.EntityID] = mapping.ToModelEntity(entity)
	return writeJSON(filepath.Join(s.dir, entitiesFile(entity.Kind)), c)
}

// DeleteEntity removes the entity record first, then its transaction file.
func (s *Store) DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.loadCollection(kind)
	if err != nil {
		return err
	}
	if _, ok := c[entityID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(c, entityID)
	if err := writeJSON(filepath.Join(s.dir, entitiesFile(kind)), c); err != nil {
		return err
	}
	path, err := s.transactionsPath(kind, entityID)
	if err != nil {
		// No transactions file can exist under an id that cannot be a file name.
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return storageErr("entity deleted but its transactions could not be removed", err)
	}
	return nil
}

// LoadTransactions implements portsrepo.TransactionReader.
func (s *Store) LoadTransactions(ctx context.Context, kind domain.EntityKind, entityID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, _, err := s.loadSet(kind, entityID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactions(set), nil
}

// SaveTransaction implements portsrepo.TransactionWriter.
func (s *Store) SaveTransaction(ctx context.Context, kind domain.EntityKind, entityID string, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, path, err := s.loadSet(kind, entityID)
	if err != nil {
		return err
	}
	set[txn.TransactionID] = mapping.ToModelTransaction(txn)
	return writeJSON(path, set)
}

// DeleteTransaction implements portsrepo.TransactionWriter.
func (s *Store) DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, path, err := s.loadSet(kind, entityID)
	if err != nil {
		return err
	}
	if _, ok := set[transactionID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(set, transactionID)
	return writeJSON(path, set)
}

// LoadSettings implements portsrepo.SettingsRepository.
func (s *Store) LoadSettings(ctx context.Context) (domain.SettingsDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc := domain.SettingsDocument{}
	if err := readJSON(filepath.Join(s.dir, settingsFile), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveSettings implements portsrepo.SettingsRepository.
func (s *Store) SaveSettings(ctx context.Context, doc domain.SettingsDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, settingsFile), doc)
}

// Reset removes every data file and recreates the empty layout.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kind := range domain.EntityKinds {
		if err := os.Remove(filepath.Join(s.dir, entitiesFile(kind))); err != nil && !errors.Is(err, os.ErrNotExist) {
			return storageErr("failed to remove "+entitiesFile(kind), err)
		}
		dir := filepath.Join(s.dir, transactionsDir(kind))
		if err := os.RemoveAll(dir); err != nil {
			return storageErr("failed to remove "+transactionsDir(kind), err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return storageErr("failed to recreate "+transactionsDir(kind), err)
		}
	}
	if err := os.Remove(filepath.Join(s.dir, settingsFile)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return storageErr("failed to remove "+settingsFile, err)
	}
	return nil
}

// Ping checks that the data directory is still accessible.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return storageErr("data directory unavailable", err)
	}
	return nil
}
