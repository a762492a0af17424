package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cookiescale/internal/errors"
	"cookiescale/internal/recipe"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// ComparisonTable renders the original and scaled recipes side by side.
// The two recipes must have identical key sets in identical order; a
// mismatch means Scale broke its contract and is reported as an internal
// error rather than rendered.
func ComparisonTable(original, scaled recipe.Recipe, originalServings, newServings int) (string, error) {
	if len(original) != len(scaled) {
		return "", errors.Internalf("comparison size mismatch: original has %d entries, scaled has %d",
			len(original), len(scaled))
	}

	rows := make([][]string, 0, len(original))
	for i, orig := range original {
		sc := scaled[i]
		if sc.Key != orig.Key {
			return "", errors.Internalf("comparison key mismatch at %d: %q vs %q", i, orig.Key, sc.Key)
		}
		rows = append(rows, []string{
			recipe.FormatName(orig.Key),
			fmt.Sprintf("%s %s", recipe.MustFormatAmount(orig.Amount), orig.Unit),
			fmt.Sprintf("%s %s", recipe.MustFormatAmount(sc.Amount), sc.Unit),
		})
	}

	headers := []string{
		"Ingredient",
		fmt.Sprintf("Original (%d)", originalServings),
		fmt.Sprintf("New (%d)", newServings),
	}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight}), nil
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
