package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_book_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// entityService implements the EntitySvcFacade interface
type entityService struct {
	BaseService
	entityRepo portsrepo.EntityRepositoryFacade
	txnRepo    portsrepo.TransactionReader
	convention domain.BalanceConvention
	newID      func() string
	today      func() string
}

// EntityServiceOption is a functional option for configuring the entity service
type EntityServiceOption func(*entityService)

// WithEntityBalanceConvention sets the supplier sign convention used for list balances.
func WithEntityBalanceConvention(c domain.BalanceConvention) EntityServiceOption {
	return func(s *entityService) {
		s.convention = c
	}
}

// WithEntityIDGenerator replaces uuid.NewString for new entity ids.
func WithEntityIDGenerator(fn func() string) EntityServiceOption {
	return func(s *entityService) {
		s.newID = fn
	}
}

// WithEntityClock replaces domain.Today for the created_on date.
func WithEntityClock(fn func() string) EntityServiceOption {
	return func(s *entityService) {
		s.today = fn
	}
}

// NewEntityService creates a new entity service with the provided options
func NewEntityService(entityRepo portsrepo.EntityRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...EntityServiceOption) portssvc.EntitySvcFacade {
	svc := &entityService{
		entityRepo: entityRepo,
		txnRepo:    txnRepo,
		convention: domain.CreditMinusDebit,
		newID:      uuid.NewString,
		today:      domain.Today,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntitySvcFacade = (*entityService)(nil)

func requireKind(kind domain.EntityKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, kind)
	}
	return nil
}

// checkPhoneFree fails with ErrDuplicate when another entity of kind already uses phone.
func (s *entityService) checkPhoneFree(ctx context.Context, kind domain.EntityKind, phone, selfID string) error {
	existing, err := s.entityRepo.FindEntityByPhone(ctx, kind, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to look up phone", slog.String("kind", string(kind)))
		return err
	}
	if existing.EntityID != selfID {
		return fmt.Errorf("%w: %s with phone %s already exists", apperrors.ErrDuplicate, strings.ToLower(kind.Label()), phone)
	}
	return nil
}

func (s *entityService) CreateEntity(ctx context.Context, kind domain.EntityKind, req dto.CreateEntityRequest) (*domain.Entity, error) {
	if err := requireKind(kind); err != nil {
		return nil, err
	}
	entity := domain.Entity{
		EntityID:  s.newID(),
		Kind:      kind,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		CreatedOn: s.today(),
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkPhoneFree(ctx, kind, entity.Phone, entity.EntityID); err != nil {
		return nil, err
	}

	if err := s.entityRepo.SaveEntity(ctx, entity); err != nil {
		s.LogError(ctx, err, "Failed to save entity",
			slog.String("kind", string(kind)),
			slog.String("entity_id", entity.EntityID))
		return nil, err
	}

	s.LogInfo(ctx, "Entity created successfully",
		slog.String("kind", string(kind)),
		slog.String("entity_id", entity.EntityID))
	return &entity, nil
}

func (s *entityService) GetEntity(ctx context.Context, kind domain.EntityKind, entityID string) (*domain.Entity, error) {
	if err := requireKind(kind); err != nil {
		return nil, err
	}
	entity, err := s.entityRepo.FindEntityByID(ctx, kind, entityID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entity by ID", slog.String("entity_id", entityID))
		}
		return nil, err
	}
	return entity, nil
}

func (s *entityService) UpdateEntity(ctx context.Context, kind domain.EntityKind, entityID string, req dto.UpdateEntityRequest) (*domain.Entity, error) {
	existing, err := s.GetEntity(ctx, kind, entityID)
	if err != nil {
		return nil, err
	}

	updated := domain.Entity{
		EntityID:  existing.EntityID,
		Kind:      kind,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     strings.TrimSpace(req.Email),
		Address:   strings.TrimSpace(req.Address),
		CreatedOn: existing.CreatedOn,
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkPhoneFree(ctx, kind, updated.Phone, entityID); err != nil {
		return nil, err
	}

	if err := s.entityRepo.SaveEntity(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update entity", slog.String("entity_id", entityID))
		return nil, err
	}

	s.LogInfo(ctx, "Entity updated successfully",
		slog.String("kind", string(kind)),
		slog.String("entity_id", entityID))
	return &updated, nil
}

func (s *entityService) DeleteEntity(ctx context.Context, kind domain.EntityKind, entityID string) error {
	if err := requireKind(kind); err != nil {
		return err
	}
	if err := s.entityRepo.DeleteEntity(ctx, kind, entityID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entity", slog.String("entity_id", entityID))
		}
		return err
	}
	s.LogInfo(ctx, "Entity deleted with its transactions",
		slog.String("kind", string(kind)),
		slog.String("entity_id", entityID))
	return nil
}

// matchesQuery is a case-insensitive name match or a plain phone substring match.
func matchesQuery(e domain.Entity, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), strings.ToLower(query)) ||
		strings.Contains(e.Phone, query)
}

func (s *entityService) ListEntities(ctx context.Context, kind domain.EntityKind, query string) ([]domain.EntitySummary, error) {
	if err := requireKind(kind); err != nil {
		return nil, err
	}
	entities, err := s.entityRepo.LoadEntities(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entities", slog.String("kind", string(kind)))
		return nil, err
	}

	query = strings.TrimSpace(query)
	summaries := make([]domain.EntitySummary, 0, len(entities))
	for _, e := range entities {
		if !matchesQuery(e, query) {
			continue
		}
		txns, err := s.txnRepo.LoadTransactions(ctx, kind, e.EntityID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrValidation) {
				s.LogError(ctx, err, "Failed to load transactions", slog.String("entity_id", e.EntityID))
				return nil, err
			}
			s.LogWarn(ctx, "Transactions unreadable for entity",
				slog.String("entity_id", e.EntityID),
				slog.String("error", err.Error()))
			view, _ := accounting.ComputeLedger(nil, kind, s.convention)
			summaries = append(summaries, domain.EntitySummary{
				Entity:    e,
				Balance:   view.FinalBalance,
				Status:    view.Status,
				HasErrors: true,
			})
			continue
		}
		view, err := accounting.ComputeLedger(txns, kind, s.convention)
		if err != nil {
			return nil, err
		}
		if view.HasErrors() {
			s.LogWarn(ctx, "Ledger has unreadable rows",
				slog.String("entity_id", e.EntityID),
				slog.Int("row_errors", len(view.RowErrors)))
		}
		summaries = append(summaries, domain.EntitySummary{
			Entity:    e,
			Balance:   view.FinalBalance,
			Status:    view.Status,
			HasErrors: view.HasErrors(),
		})
	}

	slices.SortFunc(summaries, func(a, b domain.EntitySummary) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			strings.Compare(a.EntityID, b.EntityID),
		)
	})
	return summaries, nil
}
