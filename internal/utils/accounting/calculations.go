package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedDelta applies the balance sign convention to one transaction's debit and credit.
// Customers are always credit - debit; suppliers follow the deployment convention.
//
// Example: debit 50, credit 0 for a customer returns -50.
func SignedDelta(debit, credit decimal.Decimal, kind domain.EntityKind, convention domain.BalanceConvention) (decimal.Decimal, error) {
	switch kind {
	case domain.Customer:
		return credit.Sub(debit), nil
	case domain.Supplier:
		switch convention {
		case domain.CreditMinusDebit, "":
			return credit.Sub(debit), nil
		case domain.DebitMinusCredit:
			return debit.Sub(credit), nil
		default:
			return decimal.Zero, fmt.Errorf("unknown balance convention '%s'", convention)
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown entity kind '%s'", kind)
	}
}

// ClassifyStatus maps a final balance to Due/Advance/Settled.
// A customer with a positive balance owes money; for a supplier the polarity is inverted.
func ClassifyStatus(balance decimal.Decimal, kind domain.EntityKind) domain.Status {
	if balance.IsZero() {
		return domain.StatusSettled
	}
	owes := balance.IsPositive()
	if kind == domain.Supplier {
		owes = balance.IsNegative()
	}
	if owes {
		return domain.StatusDue
	}
	return domain.StatusAdvance
}

// parseAmounts reads both sides of a stored transaction, returning one RowError per bad field.
func parseAmounts(txn domain.Transaction) (debit, credit decimal.Decimal, rowErrs []domain.RowError) {
	debit, err := txn.Debit.Decimal()
	if err != nil {
		rowErrs = append(rowErrs, domain.RowError{TransactionID: txn.TransactionID, Field: "debit", Value: string(txn.Debit), Reason: reason(err)})
	}
	credit, err = txn.Credit.Decimal()
	if err != nil {
		rowErrs = append(rowErrs, domain.RowError{TransactionID: txn.TransactionID, Field: "credit", Value: string(txn.Credit), Reason: reason(err)})
	}
	return debit, credit, rowErrs
}

func reason(err error) string {
	if inner := errors.Unwrap(err); inner != nil {
		return inner.Error()
	}
	return err.Error()
}
