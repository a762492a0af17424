package recipe

import (
	"github.com/shopspring/decimal"

	"cookiescale/internal/errors"
)

// Sanity bounds for the scaling pipeline. Violating either is a defect in
// the caller (serving bounds already cap the factor at 100/12), so both are
// enforced as internal invariants rather than user-facing validation.
var (
	maxScalingFactor = decimal.NewFromInt(100)
	maxScaledAmount  = decimal.NewFromInt(10000)
)

// ScalingFactor computes desired/original as an exact decimal ratio.
//
// Both arguments must be strictly positive: callers are expected to have
// run ValidateServings first, so a violation here is a programming error
// and is returned as an *errors.InternalError.
func ScalingFactor(original, desired int) (decimal.Decimal, error) {
	if original <= 0 {
		return decimal.Zero, errors.Internalf("original servings must be positive, got %d", original)
	}
	if desired <= 0 {
		return decimal.Zero, errors.Internalf("desired servings must be positive, got %d", desired)
	}

	factor := decimal.NewFromInt(int64(desired)).Div(decimal.NewFromInt(int64(original)))

	if factor.GreaterThan(maxScalingFactor) {
		return decimal.Zero, errors.Internalf("scaling factor %s exceeds %s", factor, maxScalingFactor)
	}

	return factor, nil
}

// Scale multiplies every ingredient amount by factor and returns a new
// recipe with the same keys, order, and units as the source. The input is
// never modified.
//
// An empty recipe, a non-positive factor, a non-positive source amount, or
// a scaled amount at or above 10000 all indicate a broken invariant and
// are returned as *errors.InternalError; shells abort on these instead of
// re-prompting.
func Scale(r Recipe, factor decimal.Decimal) (Recipe, error) {
	if len(r) == 0 {
		return nil, errors.NewInternalError("recipe is empty")
	}
	if !factor.IsPositive() {
		return nil, errors.Internalf("scaling factor must be positive, got %s", factor)
	}

	scaled := make(Recipe, 0, len(r))
	for _, ing := range r {
		if !ing.Amount.IsPositive() {
			return nil, errors.Internalf("amount for %q must be positive, got %s", ing.Key, ing.Amount)
		}

		amount := ing.Amount.Mul(factor)
		if amount.GreaterThanOrEqual(maxScaledAmount) {
			return nil, errors.Internalf("scaled amount for %q is unreasonably large: %s", ing.Key, amount)
		}

		scaled = append(scaled, Ingredient{Key: ing.Key, Amount: amount, Unit: ing.Unit})
	}

	return scaled, nil
}
