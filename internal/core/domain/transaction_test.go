package domain_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid debit only",
			tx:      domain.Transaction{Date: "2024-01-01", Particular: "Goods", Debit: "50", Credit: "0"},
			wantErr: false,
		},
		{
			name:    "valid with both sides non-zero",
			tx:      domain.Transaction{Date: "2024-01-01", Particular: "Swap", Debit: "10.5", Credit: "3"},
			wantErr: false,
		},
		{
			name:    "blank credit means zero",
			tx:      domain.Transaction{Date: "2024-02-29", Particular: "Leap", Debit: "1"},
			wantErr: false,
		},
		{
			name:    "both zero",
			tx:      domain.Transaction{Date: "2024-01-01", Particular: "Nothing", Debit: "0", Credit: "0.00"},
			wantErr: true,
			errMsg:  "debit and credit cannot both be zero",
		},
		{
			name:    "negative amount",
			tx:      domain.Transaction{Date: "2024-01-01", Particular: "Refund", Debit: "-5"},
			wantErr: true,
			errMsg:  "must not be negative",
		},
		{
			name:    "non-numeric amount",
			tx:      domain.Transaction{Date: "2024-01-01", Particular: "Oops", Credit: "abc"},
			wantErr: true,
			errMsg:  "not a decimal number",
		},
		{
			name:    "non-padded date",
			tx:      domain.Transaction{Date: "2024-1-5", Particular: "Goods", Debit: "1"},
			wantErr: true,
			errMsg:  "date must be a YYYY-MM-DD date",
		},
		{
			name:    "impossible date",
			tx:      domain.Transaction{Date: "2023-02-30", Particular: "Goods", Debit: "1"},
			wantErr: true,
			errMsg:  "date must be a YYYY-MM-DD date",
		},
		{
			name:    "blank particular",
			tx:      domain.Transaction{Date: "2024-01-01", Particular: "   ", Debit: "1"},
			wantErr: true,
			errMsg:  "particular is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Normalize(t *testing.T) {
	tx := domain.Transaction{Date: "2024-01-01", Particular: "  Goods ", Debit: "100.0", Credit: ""}.Normalize()
	assert.Equal(t, "Goods", tx.Particular)
	assert.Equal(t, domain.Amount("100"), tx.Debit)
	assert.Equal(t, domain.Amount("0"), tx.Credit)
}

func TestEntity_Validate(t *testing.T) {
	valid := domain.Entity{EntityID: "c1", Kind: domain.Customer, Name: "Asha", Phone: "555-0101", CreatedOn: "2024-01-01"}
	assert.NoError(t, valid.Validate())

	noPhone := valid
	noPhone.Phone = ""
	err := noPhone.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "phone is required")

	badEmail := valid
	badEmail.Email = "not-an-email"
	err = badEmail.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")

	badKind := valid
	badKind.Kind = "vendor"
	assert.ErrorIs(t, badKind.Validate(), apperrors.ErrValidation)

	escaping := valid
	escaping.EntityID = "../evil"
	assert.ErrorIs(t, escaping.Validate(), apperrors.ErrValidation)
}

func TestValidateRecordID(t *testing.T) {
	for _, id := range []string{"c1", "1718000000000", "a.b-c_d"} {
		assert.NoError(t, domain.ValidateRecordID(id), id)
	}
	for _, id := range []string{"", ".", "..", "../evil", "a/b", `a\b`, "tab\tid", strings.Repeat("x", 129)} {
		err := domain.ValidateRecordID(id)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "%q", id)
	}
}

func TestParseEntityKind(t *testing.T) {
	for in, want := range map[string]domain.EntityKind{
		"customer":  domain.Customer,
		"Customers": domain.Customer,
		"SUPPLIER":  domain.Supplier,
		"suppliers": domain.Supplier,
	} {
		got, err := domain.ParseEntityKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := domain.ParseEntityKind("vendor")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
