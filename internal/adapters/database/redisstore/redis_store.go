// Package redisstore stores the ledger in Redis hashes. All keys of one store share a
// {prefix} hash tag so multi-key transactions also work against a cluster.
//
//	{p}:customer:entities        hash  entity id -> entity JSON
//	{p}:customer:phones          hash  phone -> entity id
//	{p}:customer:txns:<id>       hash  transaction id -> transaction JSON
//	{p}:settings                 hash  settings key -> JSON value
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_book_app/internal/models"
	"github.com/SscSPs/ledger_book_app/internal/utils/mapping"
	"github.com/redis/go-redis/v9"
)

// maxTxRetries bounds optimistic-lock retries when a watched key changes mid-write.
const maxTxRetries = 5

// Store is a LedgerStore backed by a redis.UniversalClient.
type Store struct {
	client redis.UniversalClient // works with both single and cluster
	prefix string
}

var _ portsrepo.LedgerStore = (*Store)(nil)

// NewClient builds a single-node client, or a cluster client when useCluster
// is set and more than one address is given.
func NewClient(addrs []string, password string, useCluster bool) redis.UniversalClient {
	if useCluster && len(addrs) > 1 {
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    addrs,
			Password: password,
		})
	}
	addr := "localhost:6379"
	if len(addrs) > 0 {
		addr = addrs[0]
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

// New wraps client; prefix namespaces every key (default "ledger").
func New(client redis.UniversalClient, prefix string) *Store {
	if prefix == "" {
		prefix = "ledger"
	}
	return &Store{client: client, prefix: prefix}
}

func storageErr(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

func (s *Store) key(parts ...string) string {
	k := "{" + s.prefix + "}"
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

func (s *Store) entitiesKey(kind domain.EntityKind) string { return s.key(string(kind), "entities") }
func (s *Store) phonesKey(kind domain.EntityKind) string   { return s.key(string(kind), "phones") }
func (s *Store) settingsKey() string                        { return s.key("settings") }
func (s *Store) txnsKey(kind domain.EntityKind, entityID string) string {
	return s.key(string(kind), "txns", entityID)
}

// watch runs fn in an optimistic transaction over keys, retrying on conflicts.
func (s *Store) watch(ctx context.Context, fn func(tx *redis.Tx) error, keys ...string) error {
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = s.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return storageErr("too much write contention", err)
}

func decodeEntity(kind domain.EntityKind, id, raw string) (domain.Entity, error) {
	var m models.Entity
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return domain.Entity{}, storageErr("failed to decode entity "+id, err)
	}
	return mapping.ToDomainEntity(kind, id, m), nil
}

// LoadEntities implements portsrepo.EntityReader.
func (s *Store) LoadEntities(ctx context.Context, kind domain.EntityKind) ([]domain.Entity, error) {
	raw, err := s.client.HGetAll(ctx, s.entitiesKey(kind)).Result()
	if err != nil {
		return nil, storageErr("failed to load entities", err)
	}
	out := make([]domain.Entity, 0, len(raw))
	for id, v := range raw {
		e, err := decodeEntity(kind, id, v)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// FindEntityByID implements portsrepo.EntityReader.
func (s *Store) FindEntityByID(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error) {
	raw, err := s.client.HGet(ctx, s.entitiesKey(kind), entityID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("failed to load entity", err)
	}
	e, err := decodeEntity(kind, entityID, raw)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindEntityByPhone resolves the phone index, then the entity.
func (s *Store) FindEntityByPhone(ctx context.Context, kind domain.EntityKind, phone string) (*domain.Entity, error) {
	id, err := s.client.HGet(ctx, s.phonesKey(kind), phone).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, storageErr("failed to look up phone", err)
	}
	return s.FindEntityByID(ctx, kind, id)
}

// SaveEntity writes the entity and keeps the phone index in step, failing with
// ErrDuplicate when another entity of the kind holds the phone.
func (s *Store) SaveEntity(ctx context.Context, entity domain.Entity) error {
	data, err := json.Marshal(mapping.ToModelEntity(entity))
	if err != nil {
		return storageErr("failed to encode entity", err)
	}
	entitiesKey, phonesKey := s.entitiesKey(entity.Kind), s.phonesKey(entity.Kind)

	return s.watch(ctx, func(tx *redis.Tx) error {
		owner, err := tx.HGet(ctx, phonesKey, entity.Phone).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return storageErr("failed to look up phone", err)
		}
		if err == nil && owner != entity.EntityID {
			return fmt.Errorf("%w: %s with phone %s already exists", apperrors.ErrDuplicate, entity.Kind, entity.Phone)
		}

		previousPhone := ""
		prevRaw, err := tx.HGet(ctx, entitiesKey, entity.EntityID).Result()
		switch {
		case err == nil:
			prev, decErr := decodeEntity(entity.Kind, entity.EntityID, prevRaw)
			if decErr != nil {
				return decErr
			}
			previousPhone = prev.Phone
		case !errors.Is(err, redis.Nil):
			return storageErr("failed to load entity", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if previousPhone != "" && previousPhone != entity.Phone {
				pipe.HDel(ctx, phonesKey, previousPhone)
			}
			pipe.HSet(ctx, entitiesKey, entity.EntityID, data)
			pipe.HSet(ctx, phonesKey, entity.Phone, entity.EntityID)
			return nil
		})
		if err != nil && !errors.Is(err, redis.TxFailedErr) {
			return storageErr("failed to save entity", err)
		}
		return err
	}, entitiesKey, phonesKey)
}

// DeleteEntity removes the entity, its phone index entry and its transactions in one MULTI.
func (s *Store) DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error {
	entitiesKey, phonesKey := s.entitiesKey(kind), s.phonesKey(kind)

	return s.watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.HGet(ctx, entitiesKey, entityID).Result()
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return storageErr("failed to load entity", err)
		}
		e, err := decodeEntity(kind, entityID, raw)
		if err != nil {
			return err
		}
		owner, err := tx.HGet(ctx, phonesKey, e.Phone).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return storageErr("failed to look up phone", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, entitiesKey, entityID)
			if owner == entityID {
				pipe.HDel(ctx, phonesKey, e.Phone)
			}
			pipe.Del(ctx, s.txnsKey(kind, entityID))
			return nil
		})
		if err != nil && !errors.Is(err, redis.TxFailedErr) {
			return storageErr("failed to delete entity", err)
		}
		return err
	}, entitiesKey, phonesKey)
}

// LoadTransactions implements portsrepo.TransactionReader.
func (s *Store) LoadTransactions(ctx context.Context, kind domain.EntityKind, entityID string) ([]domain.Transaction, error) {
	raw, err := s.client.HGetAll(ctx, s.txnsKey(kind, entityID)).Result()
	if err != nil {
		return nil, storageErr("failed to load transactions", err)
	}
	set := make(models.TransactionSet, len(raw))
	for id, v := range raw {
		var m models.Transaction
		if err := json.Unmarshal([]byte(v), &m); err != nil {
			return nil, storageErr("failed to decode transaction "+id, err)
		}
		set[id] = m
	}
	return mapping.ToDomainTransactions(set), nil
}

// SaveTransaction implements portsrepo.TransactionWriter.
func (s *Store) SaveTransaction(ctx context.Context, kind domain.EntityKind, entityID string, txn domain.Transaction) error {
	data, err := json.Marshal(mapping.ToModelTransaction(txn))
	if err != nil {
		return storageErr("failed to encode transaction", err)
	}
	if err := s.client.HSet(ctx, s.txnsKey(kind, entityID), txn.TransactionID, data).Err(); err != nil {
		return storageErr("failed to save transaction", err)
	}
	return nil
}

// DeleteTransaction implements portsrepo.TransactionWriter.
func (s *Store) DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error {
	n, err := s.client.HDel(ctx, s.txnsKey(kind, entityID), transactionID).Result()
	if err != nil {
		return storageErr("failed to delete transaction", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LoadSettings implements portsrepo.SettingsRepository.
func (s *Store) LoadSettings(ctx context.Context) (domain.SettingsDocument, error) {
	raw, err := s.client.HGetAll(ctx, s.settingsKey()).Result()
	if err != nil {
		return nil, storageErr("failed to load settings", err)
	}
	doc := make(domain.SettingsDocument, len(raw))
	for k, v := range raw {
		doc[k] = json.RawMessage(v)
	}
	return doc, nil
}

// SaveSettings replaces the settings hash.
func (s *Store) SaveSettings(ctx context.Context, doc domain.SettingsDocument) error {
	values := make(map[string]any, len(doc))
	for k, v := range doc {
		values[k] = string(v)
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.settingsKey())
		if len(values) > 0 {
			pipe.HSet(ctx, s.settingsKey(), values)
		}
		return nil
	})
	if err != nil {
		return storageErr("failed to save settings", err)
	}
	return nil
}

// Reset deletes every key under the store's prefix.
func (s *Store) Reset(ctx context.Context) error {
	pattern := s.key("*")
	scanDelete := func(ctx context.Context, c redis.UniversalClient) error {
		iter := c.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
		if len(keys) == 0 {
			return nil
		}
		return c.Del(ctx, keys...).Err()
	}

	var err error
	if cluster, ok := s.client.(*redis.ClusterClient); ok {
		err = cluster.ForEachMaster(ctx, func(ctx context.Context, node *redis.Client) error {
			return scanDelete(ctx, node)
		})
	} else {
		err = scanDelete(ctx, s.client)
	}
	if err != nil {
		return storageErr("failed to reset store", err)
	}
	return nil
}

// Ping implements portsrepo.LedgerStore.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return storageErr("redis unreachable", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
