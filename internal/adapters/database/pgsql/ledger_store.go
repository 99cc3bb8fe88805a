package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerStore is a LedgerStore over PostgreSQL.
type PgxLedgerStore struct {
	BaseRepository
}

// NewLedgerStore creates a store on an existing pool. Migrations must already be applied.
func NewLedgerStore(pool *pgxpool.Pool) *PgxLedgerStore {
	return &PgxLedgerStore{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerStore = (*PgxLedgerStore)(nil)

const entityColumns = `entity_id, kind, name, phone, email, address, created_on`

func scanEntity(row pgx.Row) (domain.Entity, error) {
	var e domain.Entity
	var kind string
	err := row.Scan(&e.EntityID, &kind, &e.Name, &e.Phone, &e.Email, &e.Address, &e.CreatedOn)
	e.Kind = domain.EntityKind(kind)
	return e, err
}

// LoadEntities implements portsrepo.EntityReader.
func (r *PgxLedgerStore) LoadEntities(ctx context.Context, kind domain.EntityKind) ([]domain.Entity, error) {
	query := `SELECT ` + entityColumns + ` FROM entities WHERE kind = $1;`
	rows, err := r.Pool.Query(ctx, query, string(kind))
	if err != nil {
		return nil, storageErr("failed to query entities", err)
	}
	defer rows.Close()

	entities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Entity, error) {
		return scanEntity(row)
	})
	if err != nil {
		return nil, storageErr("failed to scan entities", err)
	}
	return entities, nil
}

func (r *PgxLedgerStore) findEntity(ctx context.Context, query string, args ...any) (*domain.Entity, error) {
	e, err := scanEntity(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageErr("failed to find entity", err)
	}
	return &e, nil
}

// FindEntityByID implements portsrepo.EntityReader.
func (r *PgxLedgerStore) FindEntityByID(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error) {
	return r.findEntity(ctx, `SELECT `+entityColumns+` FROM entities WHERE kind = $1 AND entity_id = $2;`, string(kind), entityID)
}

// FindEntityByPhone uses the (kind, phone) unique index.
func (r *PgxLedgerStore) FindEntityByPhone(ctx context.Context, kind domain.EntityKind, phone string) (*domain.Entity, error) {
	return r.findEntity(ctx, `SELECT `+entityColumns+` FROM entities WHERE kind = $1 AND phone = $2;`, string(kind), phone)
}

// SaveEntity upserts by (kind, entity_id). A phone held by another entity of the
// same kind violates the unique index and maps to ErrDuplicate.
func (r *PgxLedgerStore) SaveEntity(ctx context.Context, entity domain.Entity) error {
	query := `
		INSERT INTO entities (` + entityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (kind, entity_id) DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			created_on = EXCLUDED.created_on;
	`
	_, err := r.Pool.Exec(ctx, query,
		entity.EntityID,
		string(entity.Kind),
		entity.Name,
		entity.Phone,
		entity.Email,
		entity.Address,
		entity.CreatedOn,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: %s with phone %s already exists", apperrors.ErrDuplicate, entity.Kind, entity.Phone)
		}
		return storageErr(fmt.Sprintf("failed to save %s %s", entity.Kind, entity.EntityID), err)
	}
	return nil
}

// DeleteEntity removes the entity and its transactions in one database transaction.
func (r *PgxLedgerStore) DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM ledger_transactions WHERE kind = $1 AND entity_id = $2;`, string(kind), entityID); err != nil {
			return storageErr("failed to delete transactions", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM entities WHERE kind = $1 AND entity_id = $2;`, string(kind), entityID)
		if err != nil {
			return storageErr("failed to delete entity", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// LoadTransactions implements portsrepo.TransactionReader.
func (r *PgxLedgerStore) LoadTransactions(ctx context.Context, kind domain.EntityKind, entityID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, date, particular, debit, credit
		FROM ledger_transactions
		WHERE kind = $1 AND entity_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, string(kind), entityID)
	if err != nil {
		return nil, storageErr("failed to query transactions", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var t domain.Transaction
		var debit, credit string
		err := row.Scan(&t.TransactionID, &t.Date, &t.Particular, &debit, &credit)
		t.Debit, t.Credit = domain.Amount(debit), domain.Amount(credit)
		return t, err
	})
	if err != nil {
		return nil, storageErr("failed to scan transactions", err)
	}
	return txns, nil
}

// SaveTransaction implements portsrepo.TransactionWriter.
func (r *PgxLedgerStore) SaveTransaction(ctx context.Context, kind domain.EntityKind, entityID string, txn domain.Transaction) error {
	query := `
		INSERT INTO ledger_transactions (kind, entity_id, transaction_id, date, particular, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (kind, entity_id, transaction_id) DO UPDATE SET
			date = EXCLUDED.date,
			particular = EXCLUDED.particular,
			debit = EXCLUDED.debit,
			credit = EXCLUDED.credit;
	`
	_, err := r.Pool.Exec(ctx, query,
		string(kind),
		entityID,
		txn.TransactionID,
		txn.Date,
		txn.Particular,
		string(txn.Debit),
		string(txn.Credit),
	)
	if err != nil {
		return storageErr("failed to save transaction "+txn.TransactionID, err)
	}
	return nil
}

// DeleteTransaction implements portsrepo.TransactionWriter.
func (r *PgxLedgerStore) DeleteTransaction(ctx context.Context, kind domain.EntityKind, entityID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM ledger_transactions WHERE kind = $1 AND entity_id = $2 AND transaction_id = $3;`,
		string(kind), entityID, transactionID)
	if err != nil {
		return storageErr("failed to delete transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// LoadSettings implements portsrepo.SettingsRepository.
func (r *PgxLedgerStore) LoadSettings(ctx context.Context) (domain.SettingsDocument, error) {
	rows, err := r.Pool.Query(ctx, `SELECT key, value::text FROM settings;`)
	if err != nil {
		return nil, storageErr("failed to query settings", err)
	}
	defer rows.Close()

	doc := domain.SettingsDocument{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, storageErr("failed to scan settings", err)
		}
		doc[key] = []byte(value)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to read settings", err)
	}
	return doc, nil
}

// SaveSettings replaces every settings row in one transaction.
func (r *PgxLedgerStore) SaveSettings(ctx context.Context, doc domain.SettingsDocument) error {
	return r.InTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM settings;`); err != nil {
			return storageErr("failed to clear settings", err)
		}
		batch := &pgx.Batch{}
		for k, v := range doc {
			batch.Queue(`INSERT INTO settings (key, value) VALUES ($1, $2::jsonb);`, k, string(v))
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return storageErr("failed to save settings", err)
		}
		return nil
	})
}

// Reset truncates every ledger table.
func (r *PgxLedgerStore) Reset(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `TRUNCATE ledger_transactions, entities, settings;`); err != nil {
		return storageErr("failed to reset database", err)
	}
	return nil
}

// Ping implements portsrepo.LedgerStore.
func (r *PgxLedgerStore) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return storageErr("database unreachable", err)
	}
	return nil
}
