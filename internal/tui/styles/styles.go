// Package styles provides the lipgloss styling shared by the console and
// touch-style shells. A Styles value is built from a named palette so the
// configured theme applies uniformly to both shells.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds the styled components both shells render with.
type Styles struct {
	Palette Palette

	// Headings
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Recipe rendering
	Amount lipgloss.Style
	Unit   lipgloss.Style
	Name   lipgloss.Style
	Factor lipgloss.Style

	// Interaction
	Prompt  lipgloss.Style
	Help    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style

	// Surfaces
	ContentBox lipgloss.Style
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
}

// New creates a Styles instance from the given palette.
func New(p Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		Amount: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		Unit: lipgloss.NewStyle().
			Foreground(p.Text),

		Name: lipgloss.NewStyle().
			Foreground(p.Text),

		Factor: lipgloss.NewStyle().
			Foreground(p.Warning),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),

		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),

		ContentBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Error).
			Padding(1, 3),

		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Error),
	}
}

// ForTheme returns styles for the named theme, falling back to the default
// palette for unknown names.
func ForTheme(name string) Styles {
	return New(ByName(name))
}

// Default returns styles with the default theme.
func Default() Styles {
	return New(ByName(string(ThemeDefault)))
}
