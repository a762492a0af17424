// Package recipe implements the scaling core: servings validation,
// scaling-factor arithmetic, recipe scaling, and display formatting.
//
// Every operation in this package is a pure, stateless function of its
// inputs. The only package-level data is the read-only baseline recipe
// table, which is defined for OriginalServings and never mutated; Original
// returns a fresh copy so callers cannot corrupt it. Amounts use
// shopspring/decimal so scaling-factor division and fraction matching are
// exact rather than subject to binary float drift.
package recipe

import (
	"github.com/shopspring/decimal"
)

// Serving bounds for the baseline recipe. These are compile-time constants;
// no flag, environment variable, or config setting changes them.
const (
	// OriginalServings is the serving count the baseline recipe is written for.
	OriginalServings = 12
	// MinServings is the smallest serving count a user may request.
	MinServings = 1
	// MaxServings is the largest serving count a user may request.
	MaxServings = 100
)

// Ingredient is a single entry in a recipe. Immutable once defined.
type Ingredient struct {
	// Key is the machine identifier, e.g. "baking_powder".
	// Use FormatName to derive the display name.
	Key string
	// Amount is the quantity, strictly positive.
	Amount decimal.Decimal
	// Unit is the measurement label, e.g. "cups". Scaling never changes it.
	Unit string
}

// Recipe is an ordered list of ingredients. Order is part of the value: it
// is preserved by Scale and used as the display order by both shells.
type Recipe []Ingredient

// Lookup returns the ingredient with the given key, if present.
func (r Recipe) Lookup(key string) (Ingredient, bool) {
	for _, ing := range r {
		if ing.Key == key {
			return ing, true
		}
	}
	return Ingredient{}, false
}

// Keys returns the ingredient keys in recipe order.
func (r Recipe) Keys() []string {
	keys := make([]string, len(r))
	for i, ing := range r {
		keys[i] = ing.Key
	}
	return keys
}

// original is the fixed baseline table for OriginalServings people.
var original = Recipe{
	{Key: "flour", Amount: decimal.NewFromInt(3), Unit: "cups"},
	{Key: "sugar", Amount: decimal.NewFromInt(2), Unit: "cups"},
	{Key: "butter", Amount: decimal.NewFromInt(1), Unit: "cup"},
	{Key: "eggs", Amount: decimal.NewFromInt(4), Unit: "large"},
	{Key: "milk", Amount: decimal.RequireFromString("1.5"), Unit: "cups"},
	{Key: "baking_powder", Amount: decimal.NewFromInt(2), Unit: "teaspoons"},
	{Key: "vanilla_extract", Amount: decimal.NewFromInt(1), Unit: "teaspoon"},
	{Key: "salt", Amount: decimal.RequireFromString("0.5"), Unit: "teaspoon"},
}

// Original returns a copy of the baseline recipe. Callers may hold or
// modify the copy freely; the package-level table is never exposed.
func Original() Recipe {
	out := make(Recipe, len(original))
	copy(out, original)
	return out
}
