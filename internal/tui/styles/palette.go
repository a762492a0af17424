package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// Palette holds the colors a theme provides.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	Border    lipgloss.Color
}

// palettes maps theme names to their color sets. All colors meet WCAG AA
// contrast (4.5:1) on dark backgrounds.
var palettes = map[ThemeName]Palette{
	ThemeDefault: {
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Border:    lipgloss.Color("#6B7280"), // Gray (gray-500)
	},
	ThemeMonokai: {
		Primary:   lipgloss.Color("#AE81FF"),
		Secondary: lipgloss.Color("#A6E22E"),
		Warning:   lipgloss.Color("#E6DB74"),
		Error:     lipgloss.Color("#F92672"),
		Muted:     lipgloss.Color("#75715E"),
		Text:      lipgloss.Color("#F8F8F2"),
		Surface:   lipgloss.Color("#272822"),
		Border:    lipgloss.Color("#75715E"),
	},
	ThemeDracula: {
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Text:      lipgloss.Color("#F8F8F2"),
		Surface:   lipgloss.Color("#282A36"),
		Border:    lipgloss.Color("#6272A4"),
	},
	ThemeNord: {
		Primary:   lipgloss.Color("#88C0D0"),
		Secondary: lipgloss.Color("#A3BE8C"),
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#616E88"),
		Text:      lipgloss.Color("#ECEFF4"),
		Surface:   lipgloss.Color("#2E3440"),
		Border:    lipgloss.Color("#4C566A"),
	},
}

// ByName returns the palette for the named theme, falling back to the
// default palette for unknown names.
func ByName(name string) Palette {
	if p, ok := palettes[ThemeName(name)]; ok {
		return p
	}
	return palettes[ThemeDefault]
}
