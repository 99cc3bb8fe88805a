package dto

import (
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateEntityRequest defines the data needed to add a customer or supplier.
type CreateEntityRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// UpdateEntityRequest replaces every editable field of an entity.
// CreatedOn is kept from the stored record.
type UpdateEntityRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// ListEntitiesParams defines query parameters for listing entities.
type ListEntitiesParams struct {
	Query string `form:"q"` // case-insensitive name match or phone substring
}

// EntityResponse defines the data returned for an entity.
type EntityResponse struct {
	EntityID  string            `json:"entityID"`
	Kind      domain.EntityKind `json:"kind"`
	Name      string            `json:"name"`
	Phone     string            `json:"phone"`
	Email     string            `json:"email,omitempty"`
	Address   string            `json:"address,omitempty"`
	CreatedOn string            `json:"createdOn"`
}

// EntitySummaryResponse is a list entry: the entity and its current balance.
type EntitySummaryResponse struct {
	EntityResponse
	Balance          decimal.Decimal `json:"balance"`
	FormattedBalance string          `json:"formattedBalance"`
	Status           domain.Status   `json:"status"`
	HasErrors        bool            `json:"hasErrors,omitempty"`
}

// ToEntityResponse converts a domain.Entity to EntityResponse DTO
func ToEntityResponse(e *domain.Entity) EntityResponse {
	return EntityResponse{
		EntityID:  e.EntityID,
		Kind:      e.Kind,
		Name:      e.Name,
		Phone:     e.Phone,
		Email:     e.Email,
		Address:   e.Address,
		CreatedOn: e.CreatedOn,
	}
}

// ToListEntitySummaryResponse converts summaries, formatting balances with settings.
func ToListEntitySummaryResponse(summaries []domain.EntitySummary, settings domain.Settings) []EntitySummaryResponse {
	res := make([]EntitySummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = EntitySummaryResponse{
			EntityResponse:   ToEntityResponse(&s.Entity),
			Balance:          s.Balance,
			FormattedBalance: utils.FormatCurrency(s.Balance, settings),
			Status:           s.Status,
			HasErrors:        s.HasErrors,
		}
	}
	return res
}
