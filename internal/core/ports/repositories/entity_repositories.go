package repositories

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
)

// EntityReader defines read operations for customers and suppliers.
type EntityReader interface {
	// LoadEntities returns every entity of a kind, in no particular order.
	LoadEntities(ctx context.Context, kind domain.EntityKind) ([]domain.Entity, error)

	// FindEntityByID returns apperrors.ErrNotFound when no entity has the id.
	FindEntityByID(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error)

	// FindEntityByPhone returns the entity of a kind holding phone, or apperrors.ErrNotFound.
	FindEntityByPhone(ctx context.Context, kind domain.EntityKind, phone string) (*domain.Entity, error)
}

// EntityWriter defines write operations for customers and suppliers.
type EntityWriter interface {
	// SaveEntity inserts or fully replaces the entity stored under entity.EntityID.
	// Backends with a phone index return apperrors.ErrDuplicate when another
	// entity of the same kind already holds the phone.
	SaveEntity(ctx context.Context, entity domain.Entity) error

	// DeleteEntity removes the entity and every transaction it owns.
	// It returns apperrors.ErrNotFound when the entity does not exist.
	DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error
}

// EntityRepositoryFacade combines entity reads and writes.
type EntityRepositoryFacade interface {
	EntityReader
	EntityWriter
}
