package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
)

// Transaction is a single dated ledger line belonging to exactly one entity.
// Debit and Credit are both non-negative; both non-zero is allowed.
type Transaction struct {
	TransactionID string `json:"transactionID"`
	Date          string `json:"date"`
	Particular    string `json:"particular"`
	Debit         Amount `json:"debit"`
	Credit        Amount `json:"credit"`
}

// Validate applies the write-time rules. Read paths tolerate legacy rows that
// would fail here and report them per row instead.
func (t Transaction) Validate() error {
	var problems []string
	if !IsISODate(t.Date) {
		problems = append(problems, "date must be a YYYY-MM-DD date")
	}
	if strings.TrimSpace(t.Particular) == "" {
		problems = append(problems, "particular is required")
	}
	debit, errD := t.Debit.Decimal()
	if errD != nil {
		problems = append(problems, "debit "+errD.Error())
	}
	credit, errC := t.Credit.Decimal()
	if errC != nil {
		problems = append(problems, "credit "+errC.Error())
	}
	if errD == nil && errC == nil && debit.IsZero() && credit.IsZero() {
		problems = append(problems, "debit and credit cannot both be zero")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// Normalize returns a copy with trimmed text and canonical decimal amounts.
// It assumes Validate has passed.
func (t Transaction) Normalize() Transaction {
	t.Particular = strings.TrimSpace(t.Particular)
	if d, err := t.Debit.Decimal(); err == nil {
		t.Debit = NewAmount(d)
	}
	if c, err := t.Credit.Decimal(); err == nil {
		t.Credit = NewAmount(c)
	}
	return t
}
