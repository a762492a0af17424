package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"cookiescale/internal/errors"
	"cookiescale/internal/recipe"
	"cookiescale/internal/tui/styles"
)

func TestIngredientLines(t *testing.T) {
	st := styles.Default()
	r := recipe.Original()

	lines := IngredientLines(r, st)
	if len(lines) != len(r) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(r))
	}

	// First entry is flour, 3 cups; names are display-formatted.
	if !strings.Contains(lines[0], "3") || !strings.Contains(lines[0], "cups") || !strings.Contains(lines[0], "Flour") {
		t.Errorf("lines[0] = %q, want amount, unit, and display name", lines[0])
	}
	if !strings.Contains(lines[5], "Baking Powder") {
		t.Errorf("lines[5] = %q, want %q", lines[5], "Baking Powder")
	}
}

func TestRecipeBlock(t *testing.T) {
	out := RecipeBlock(recipe.Original(), 12, styles.Default())

	for _, want := range []string{"RECIPE FOR 12 SERVINGS", "Ingredients:", "Vanilla Extract", "1 1/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("RecipeBlock output missing %q", want)
		}
	}
}

func TestFactorLine(t *testing.T) {
	tests := []struct {
		factor string
		want   string
	}{
		{factor: "2", want: "Scaling factor: 2.00x"},
		{factor: "0.5", want: "Scaling factor: 0.50x"},
		{factor: "2.5", want: "Scaling factor: 2.50x"},
	}

	for _, tt := range tests {
		t.Run(tt.factor, func(t *testing.T) {
			got := FactorLine(decimal.RequireFromString(tt.factor), styles.Default())
			if !strings.Contains(got, tt.want) {
				t.Errorf("FactorLine(%s) = %q, want it to contain %q", tt.factor, got, tt.want)
			}
		})
	}
}

func TestComparisonTable(t *testing.T) {
	original := recipe.Original()
	factor, err := recipe.ScalingFactor(recipe.OriginalServings, 24)
	if err != nil {
		t.Fatalf("ScalingFactor: %v", err)
	}
	scaled, err := recipe.Scale(original, factor)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	out, err := ComparisonTable(original, scaled, recipe.OriginalServings, 24)
	if err != nil {
		t.Fatalf("ComparisonTable unexpected error: %v", err)
	}

	for _, want := range []string{
		"Ingredient", "Original (12)", "New (24)",
		"Flour", "3 cups", "6 cups",
		"Salt", "1/2 teaspoon", "1 teaspoon",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ComparisonTable output missing %q", want)
		}
	}
}

func TestComparisonTable_MismatchIsInternal(t *testing.T) {
	original := recipe.Original()

	truncated := recipe.Original()[:4]
	if _, err := ComparisonTable(original, truncated, 12, 24); !errors.IsInternal(err) {
		t.Errorf("size mismatch error = %v, want internal", err)
	}

	reordered := recipe.Original()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	if _, err := ComparisonTable(original, reordered, 12, 24); !errors.IsInternal(err) {
		t.Errorf("key mismatch error = %v, want internal", err)
	}
}
