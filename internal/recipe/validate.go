package recipe

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"cookiescale/internal/errors"
)

var (
	minServingsDec = decimal.NewFromInt(MinServings)
	maxServingsDec = decimal.NewFromInt(MaxServings)
)

// ValidateServings parses a raw servings string from a shell and returns
// the validated serving count. Surrounding whitespace is ignored.
//
// Failures are *errors.ValidationError values wrapping one of the taxonomy
// sentinels:
//   - ErrEmptyInput for input that trims to nothing
//   - ErrNotNumeric for input that does not parse as a number
//   - ErrNotWholeNumber for numeric input with a fractional part ("12.5")
//   - ErrBelowMinimum / ErrAboveMaximum for out-of-range values
//
// On success the result is guaranteed to satisfy
// MinServings <= n <= MaxServings.
func ValidateServings(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, errors.NewValidationError(errors.ErrEmptyInput,
			"Servings cannot be empty").WithInput(input)
	}

	// Parse as a decimal first so "12.5" is reported as a whole-number
	// problem rather than a generic parse failure.
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, errors.NewValidationError(errors.ErrNotNumeric,
			"Servings must be a valid number").WithInput(input)
	}

	if !value.IsInteger() {
		return 0, errors.NewValidationError(errors.ErrNotWholeNumber,
			"Servings must be a whole number").WithInput(input)
	}

	if value.LessThan(minServingsDec) {
		return 0, errors.NewValidationError(errors.ErrBelowMinimum,
			fmt.Sprintf("Servings must be at least %d", MinServings)).WithInput(input)
	}

	if value.GreaterThan(maxServingsDec) {
		return 0, errors.NewValidationError(errors.ErrAboveMaximum,
			fmt.Sprintf("Servings cannot exceed %d", MaxServings)).WithInput(input)
	}

	return int(value.IntPart()), nil
}
