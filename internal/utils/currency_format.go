package utils

import (
	"strings"

	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with the configured symbol, thousands separators
// and two decimal places.
// Example: 1234.5 with symbol "₹" returns "₹1,234.50"
// Example: -50 returns "-₹50.00", or "₹50.00" when balance_display is absolute
func FormatCurrency(amount decimal.Decimal, settings domain.Settings) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() && settings.BalanceDisplay != domain.BalanceAbsolute {
		sign = "-"
	}
	return sign + settings.CurrencySymbol + groupThousands(rounded.Abs().StringFixed(2))
}

// FormatWithPrecision formats an amount with the given precision.
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// groupThousands inserts commas into the integer part of an unsigned decimal string.
func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
