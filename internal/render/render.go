// Package render builds the display strings both shells show: formatted
// ingredient lists, the scaling-factor line, and the side-by-side
// comparison table. Rendering never mutates a recipe.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"cookiescale/internal/recipe"
	"cookiescale/internal/tui/styles"
)

// IngredientLines renders one bullet line per ingredient, in recipe order:
//
//   - 1 1/2 cups Milk
func IngredientLines(r recipe.Recipe, st styles.Styles) []string {
	lines := make([]string, 0, len(r))
	for _, ing := range r {
		line := fmt.Sprintf("  • %s %s %s",
			st.Amount.Render(recipe.MustFormatAmount(ing.Amount)),
			st.Unit.Render(ing.Unit),
			st.Name.Render(recipe.FormatName(ing.Key)),
		)
		lines = append(lines, line)
	}
	return lines
}

// RecipeBlock renders a heading plus the ingredient list for the given
// serving count.
func RecipeBlock(r recipe.Recipe, servings int, st styles.Styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(fmt.Sprintf("RECIPE FOR %d SERVINGS", servings)))
	b.WriteString("\n\n")
	b.WriteString(st.Subtitle.Render("Ingredients:"))
	b.WriteString("\n")
	for _, line := range IngredientLines(r, st) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// FactorLine renders the scaling factor as the shells show it, e.g.
// "Scaling factor: 2.00x".
func FactorLine(factor decimal.Decimal, st styles.Styles) string {
	return st.Factor.Render(fmt.Sprintf("Scaling factor: %sx", factor.StringFixed(2)))
}
