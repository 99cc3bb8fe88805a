package services

import (
	"context"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/dto"
)

// EntityReaderSvc defines read operations for customers and suppliers
type EntityReaderSvc interface {
	// GetEntity retrieves one entity of kind by id.
	GetEntity(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error)

	// ListEntities returns every entity of kind matching query, with its balance,
	// sorted by name then id. An empty query matches everything.
	ListEntities(ctx context.Context, kind domain.EntityKind, query string) ([]domain.EntitySummary, error)
}

// EntityWriterSvc defines write operations for customers and suppliers
type EntityWriterSvc interface {
	// CreateEntity adds an entity with a new id, created today.
	CreateEntity(ctx context.Context, kind domain.EntityKind, req dto.CreateEntityRequest) (*domain.Entity, error)

	// UpdateEntity replaces an entity's fields, keeping its id and created date.
	UpdateEntity(ctx context.Context, kind domain.EntityKind, entityID string, req dto.UpdateEntityRequest) (*domain.Entity, error)

	// DeleteEntity removes an entity and all its transactions.
	DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error
}

// EntitySvcFacade combines all entity-related service interfaces
type EntitySvcFacade interface {
	EntityReaderSvc
	EntityWriterSvc
}
