package recipe

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cookiescale/internal/errors"
)

// FormatName converts an ingredient key to its display name: underscores
// become spaces and each word is capitalized. Pure and total, and safe for
// concurrent callers: a cases.Caser is a stateful transformer, so each call
// builds its own instead of sharing one.
//
//	FormatName("baking_powder") == "Baking Powder"
func FormatName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// fractions is the strict display table for common kitchen fractions.
// These are exact matches against the 2-place-rounded remainder, not a
// rational approximation: 0.33 is rendered as a decimal, never as 1/3.
var fractions = []struct {
	remainder decimal.Decimal
	display   string
}{
	{decimal.RequireFromString("0.25"), "1/4"},
	{decimal.RequireFromString("0.5"), "1/2"},
	{decimal.RequireFromString("0.75"), "3/4"},
}

// FormatAmount renders a quantity for display:
//
//   - whole numbers render without a decimal point (2.0 -> "2")
//   - remainders matching the strict fraction table render as a fraction
//     (0.5 -> "1/2") or mixed number (1.5 -> "1 1/2")
//   - everything else renders as a decimal rounded to 2 places with
//     trailing zeros stripped (2.10 -> "2.1")
//
// The result is never empty. Amounts are positive by construction
// upstream; a zero or negative amount is rejected with ErrInvalidAmount as
// a defensive check.
func FormatAmount(amount decimal.Decimal) (string, error) {
	if !amount.IsPositive() {
		return "", errors.NewValidationError(errors.ErrInvalidAmount,
			"Amount must be positive").WithInput(amount.String())
	}

	if amount.IsInteger() {
		return amount.String(), nil
	}

	whole := amount.IntPart()
	remainder := amount.Sub(decimal.NewFromInt(whole)).Round(2)

	for _, f := range fractions {
		if !remainder.Equal(f.remainder) {
			continue
		}
		if whole > 0 {
			return fmt.Sprintf("%d %s", whole, f.display), nil
		}
		return f.display, nil
	}

	// Decimal.String trims trailing zeros, so Round(2) alone yields the
	// "2.33" / "2.1" forms (and "3" when the remainder rounds away).
	return amount.Round(2).String(), nil
}

// MustFormatAmount is FormatAmount for amounts known positive, panicking on
// the defensive error. Rendering paths use it for amounts that came out of
// Scale or the baseline table, both of which guarantee positivity.
func MustFormatAmount(amount decimal.Decimal) string {
	s, err := FormatAmount(amount)
	if err != nil {
		panic(err)
	}
	return s
}
