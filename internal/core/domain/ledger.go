package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BalanceConvention selects how a transaction's debit and credit combine into
// a signed balance delta.
type BalanceConvention string

const (
	CreditMinusDebit BalanceConvention = "credit_minus_debit"
	DebitMinusCredit BalanceConvention = "debit_minus_credit"
)

// ParseBalanceConvention validates a configured convention; empty means CreditMinusDebit.
func ParseBalanceConvention(s string) (BalanceConvention, error) {
	switch c := BalanceConvention(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CreditMinusDebit, nil
	case CreditMinusDebit, DebitMinusCredit:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown balance convention %q", apperrors.ErrValidation, s)
	}
}

// Status is the human classification of a final balance.
type Status string

const (
	StatusDue     Status = "Due"
	StatusAdvance Status = "Advance"
	StatusSettled Status = "Settled"
)

// RowError describes one stored transaction whose amounts could not be read.
type RowError struct {
	TransactionID string `json:"transactionID"`
	Field         string `json:"field"`
	Value         string `json:"value"`
	Reason        string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("transaction %s: %s %q: %s", e.TransactionID, e.Field, e.Value, e.Reason)
}

// LedgerRow is one transaction with the cumulative balance after it.
// A row with Error set contributed zero to every total.
type LedgerRow struct {
	TransactionID  string          `json:"transactionID"`
	Date           string          `json:"date"`
	Particular     string          `json:"particular"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Error          string          `json:"error,omitempty"`
}

// LedgerView is the computed ledger of one entity.
type LedgerView struct {
	Kind         EntityKind      `json:"kind"`
	Rows         []LedgerRow     `json:"rows"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	FinalBalance decimal.Decimal `json:"finalBalance"`
	Status       Status          `json:"status"`
	RowErrors    []RowError      `json:"rowErrors,omitempty"`
}

// HasErrors reports whether any row was unreadable.
func (v LedgerView) HasErrors() bool {
	return len(v.RowErrors) > 0
}

// Err returns an ErrIntegrity-wrapped error listing unreadable rows, or nil.
func (v LedgerView) Err() error {
	if !v.HasErrors() {
		return nil
	}
	msgs := make([]string, len(v.RowErrors))
	for i, re := range v.RowErrors {
		msgs[i] = re.Error()
	}
	return fmt.Errorf("%w: %d unreadable row(s): %s", apperrors.ErrIntegrity, len(v.RowErrors), strings.Join(msgs, "; "))
}

// EntitySummary is an entity together with its current ledger position.
type EntitySummary struct {
	Entity
	Balance   decimal.Decimal `json:"balance"`
	Status    Status          `json:"status"`
	HasErrors bool            `json:"hasErrors,omitempty"`
}
