package mapping

import (
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/models"
)

// ToModelEntity converts a domain Entity to its stored form.
func ToModelEntity(d domain.Entity) models.Entity {
	return models.Entity{
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		CreatedOn: d.CreatedOn,
	}
}

// ToDomainEntity converts a stored Entity back to a domain Entity.
func ToDomainEntity(kind domain.EntityKind, id string, m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:  id,
		Kind:      kind,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		CreatedOn: m.CreatedOn,
	}
}

// ToDomainEntities converts a collection, in no particular order.
func ToDomainEntities(kind domain.EntityKind, c models.EntityCollection) []domain.Entity {
	out := make([]domain.Entity, 0, len(c))
	for id, m := range c {
		out = append(out, ToDomainEntity(kind, id, m))
	}
	return out
}
