package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
)

// EntityKind distinguishes customers from suppliers. Balance sign and status
// polarity both depend on it.
type EntityKind string

const (
	Customer EntityKind = "customer"
	Supplier EntityKind = "supplier"
)

// EntityKinds lists every kind in display order.
var EntityKinds = []EntityKind{Customer, Supplier}

// IsValid reports whether k is a known kind.
func (k EntityKind) IsValid() bool {
	return k == Customer || k == Supplier
}

// Label returns the capitalised display name ("Customer", "Supplier").
func (k EntityKind) Label() string {
	switch k {
	case Customer:
		return "Customer"
	case Supplier:
		return "Supplier"
	default:
		return string(k)
	}
}

// ParseEntityKind accepts "customer"/"supplier" in any case, singular or plural.
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, s)
	}
	return k, nil
}

// Entity is a customer or supplier against which a ledger is kept.
// Phone is unique within the entity's own kind.
type Entity struct {
	EntityID  string     `json:"entityID"`
	Kind      EntityKind `json:"kind"`
	Name      string     `json:"name" validate:"required"`
	Phone     string     `json:"phone" validate:"required"`
	Email     string     `json:"email" validate:"omitempty,email"`
	Address   string     `json:"address"`
	CreatedOn string     `json:"createdOn" validate:"required,isodate"`
}

// Validate checks the write-time field rules of an entity.
func (e Entity) Validate() error {
	if !e.Kind.IsValid() {
		return fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrValidation, e.Kind)
	}
	if err := ValidateRecordID(e.EntityID); err != nil {
		return err
	}
	return validateStruct(e)
}
