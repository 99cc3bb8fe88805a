package dto

import (
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
)

// TransactionRequest defines a ledger entry to add or replace.
// Amounts may be sent as JSON strings or numbers.
type TransactionRequest struct {
	Date       string        `json:"date" binding:"required,isodate"`
	Particular string        `json:"particular" binding:"required"`
	Debit      domain.Amount `json:"debit" swaggertype:"string" example:"0"`
	Credit     domain.Amount `json:"credit" swaggertype:"string" example:"100.50"`
}

// ToDomain builds a transaction with the given id from the request.
func (r TransactionRequest) ToDomain(transactionID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: transactionID,
		Date:          r.Date,
		Particular:    r.Particular,
		Debit:         r.Debit,
		Credit:        r.Credit,
	}
}

// TransactionResponse defines the data returned for a stored transaction.
type TransactionResponse struct {
	TransactionID string        `json:"transactionID"`
	Date          string        `json:"date"`
	Particular    string        `json:"particular"`
	Debit         domain.Amount `json:"debit" swaggertype:"string"`
	Credit        domain.Amount `json:"credit" swaggertype:"string"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Particular:    t.Particular,
		Debit:         t.Debit,
		Credit:        t.Credit,
	}
}
