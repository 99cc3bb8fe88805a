package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errAmountNotNumeric = errors.New("not a decimal number")
	errAmountNegative   = errors.New("must not be negative")
	errAmountOutOfRange = errors.New("is out of range")
)

// Limits checked before any arithmetic on an amount.
const (
	maxAmountLen      = 64
	maxAmountExponent = 20
)

// Amount is a debit or credit exactly as persisted: decimal text. It decodes
// from either a JSON string or a JSON number and keeps the raw text, so a
// malformed legacy value survives loading and can be reported per row later.
// A blank amount (missing key) means zero.
type Amount string

// NewAmount renders d as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.String())
}

// Decimal parses the amount as a non-negative decimal.
func (a Amount) Decimal() (decimal.Decimal, error) {
	s := strings.TrimSpace(string(a))
	if s == "" {
		return decimal.Zero, nil
	}
	if len(s) > maxAmountLen {
		return decimal.Zero, fmt.Errorf("%w: longer than %d characters", errAmountOutOfRange, maxAmountLen)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errAmountNotNumeric, string(a))
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: %q", errAmountOutOfRange, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", errAmountNegative, string(a))
	}
	return d, nil
}

// MarshalJSON always writes the amount as a JSON string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalJSON never fails on a well-formed JSON value; non-numeric input is
// kept verbatim for Decimal to reject.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
	default:
		*a = Amount(data)
	}
	return nil
}
