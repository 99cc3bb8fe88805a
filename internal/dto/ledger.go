package dto

import (
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/shopspring/decimal"
)

// LedgerRowResponse is one ledger line with display strings.
type LedgerRowResponse struct {
	TransactionID    string          `json:"transactionID"`
	Date             string          `json:"date"`
	DisplayDate      string          `json:"displayDate"`
	Particular       string          `json:"particular"`
	Debit            decimal.Decimal `json:"debit"`
	Credit           decimal.Decimal `json:"credit"`
	RunningBalance   decimal.Decimal `json:"runningBalance"`
	FormattedBalance string          `json:"formattedBalance"`
	Error            string          `json:"error,omitempty"`
}

// LedgerResponse defines the data returned for one entity's ledger.
type LedgerResponse struct {
	Entity           EntityResponse      `json:"entity"`
	Rows             []LedgerRowResponse `json:"rows"`
	TotalDebit       decimal.Decimal     `json:"totalDebit"`
	TotalCredit      decimal.Decimal     `json:"totalCredit"`
	FinalBalance     decimal.Decimal     `json:"finalBalance"`
	FormattedBalance string              `json:"formattedBalance"`
	Status           domain.Status       `json:"status"`
	RowErrors        []domain.RowError   `json:"rowErrors,omitempty"`
}

// ToLedgerResponse converts a computed ledger, formatting amounts and dates with settings.
func ToLedgerResponse(entity *domain.Entity, view domain.LedgerView, settings domain.Settings) LedgerResponse {
	rows := make([]LedgerRowResponse, len(view.Rows))
	for i, r := range view.Rows {
		rows[i] = LedgerRowResponse{
			TransactionID:    r.TransactionID,
			Date:             r.Date,
			DisplayDate:      utils.FormatDate(r.Date, settings),
			Particular:       r.Particular,
			Debit:            r.Debit,
			Credit:           r.Credit,
			RunningBalance:   r.RunningBalance,
			FormattedBalance: utils.FormatCurrency(r.RunningBalance, settings),
			Error:            r.Error,
		}
	}
	return LedgerResponse{
		Entity:           ToEntityResponse(entity),
		Rows:             rows,
		TotalDebit:       view.TotalDebit,
		TotalCredit:      view.TotalCredit,
		FinalBalance:     view.FinalBalance,
		FormattedBalance: utils.FormatCurrency(view.FinalBalance, settings),
		Status:           view.Status,
		RowErrors:        view.RowErrors,
	}
}
