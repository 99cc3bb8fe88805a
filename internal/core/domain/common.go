package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
)

// maxRecordIDLen bounds entity and transaction ids.
const maxRecordIDLen = 128

// ISODateLayout is the only date form the ledger stores. Because it is zero-padded,
// comparing two such strings lexicographically orders them chronologically.
const ISODateLayout = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(ISODateLayout, s)
	return err == nil
}

// Today returns the current local date in ISODateLayout.
func Today() string {
	return time.Now().Format(ISODateLayout)
}

// ValidateRecordID rejects ids that cannot name a stored record: empty, too long,
// a path element such as ".." or "a/b", or containing control characters.
func ValidateRecordID(id string) error {
	bad := id == "" || len(id) > maxRecordIDLen || id == "." || id == ".." ||
		strings.ContainsAny(id, `/\`) ||
		strings.ContainsFunc(id, unicode.IsControl)
	if bad {
		return fmt.Errorf("%w: invalid id %q", apperrors.ErrValidation, id)
	}
	return nil
}
