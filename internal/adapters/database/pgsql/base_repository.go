package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the pool and the transaction helper the store's multi-statement writes share.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// InTx runs fn inside one database transaction. fn's error rolls the
// transaction back and is returned unchanged.
func (r *BaseRepository) InTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return storageErr("failed to begin transaction", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, storageErr("failed to rollback transaction", rbErr))
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storageErr("failed to commit transaction", err)
	}
	return nil
}

// storageErr wraps a driver failure so callers can match apperrors.ErrStorage.
func storageErr(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}
