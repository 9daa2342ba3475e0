// Package pricing renders decimal amounts as display currency strings.
// Every surface that shows an amount (cart, totals, invoice lines) goes
// through the same Formatter so a given number is never formatted two
// different ways.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Formatter renders amounts in en-US conventions: currency symbol,
// comma thousands grouping, exactly two fraction digits. Rounding is
// half away from zero, applied once at format time; the underlying
// decimals stay exact.
type Formatter struct {
	symbol string
}

// NewUSD returns the dollar formatter used across the storefront.
func NewUSD() Formatter {
	return Formatter{symbol: "$"}
}

func (f Formatter) Format(amount decimal.Decimal) string {
	// StringFixed rounds half away from zero.
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(f.symbol)
	b.WriteString(group(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// group inserts a comma every three digits, right to left.
func group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
