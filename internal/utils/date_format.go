package utils

import (
	"time"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/lestrrat-go/strftime"
)

// FormatDate renders a stored YYYY-MM-DD date with the strftime pattern from settings.
// Dates that do not parse, or patterns that are invalid, return the input unchanged.
func FormatDate(date string, settings domain.Settings) string {
	t, err := time.Parse(domain.ISODateLayout, date)
	if err != nil {
		return date
	}
	out, err := strftime.Format(settings.DateFormat, t)
	if err != nil {
		return date
	}
	return out
}
