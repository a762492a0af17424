package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"cookiescale/internal/errors"
	"cookiescale/internal/logging"
	"cookiescale/internal/recipe"
	"cookiescale/internal/render"
	"cookiescale/internal/tui/styles"
)

const promptText = "Enter servings and press Enter to scale."

// Model is the Bubbletea model for the touch-style shell. The input field
// accepts digits only; Enter runs the scaling pipeline, r resets back to
// the prompt state, and validation errors surface as a modal dialog.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	styles   styles.Styles
	log      *logging.Logger

	width  int
	height int
	ready  bool

	// errMsg, when non-empty, is shown as a modal dialog over the page.
	errMsg string

	// Result state; servings == 0 means the prompt state (nothing scaled).
	servings       int
	factor         decimal.Decimal
	scaled         recipe.Recipe
	showComparison bool

	// fatalErr records a broken pipeline invariant; the app aborts with it.
	fatalErr error
	quitting bool
}

// NewModel creates the shell model.
func NewModel(st styles.Styles, log *logging.Logger, showComparison bool) Model {
	if log == nil {
		log = logging.Discard()
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%d-%d", recipe.MinServings, recipe.MaxServings)
	ti.CharLimit = 3
	ti.Width = 10
	ti.Validate = digitsOnly
	ti.Focus()

	m := Model{
		input:          ti,
		viewport:       viewport.New(0, 0),
		styles:         st,
		log:            log.WithShell("tui"),
		showComparison: showComparison,
	}
	m.refreshContent()
	return m
}

// digitsOnly restricts the text field to digits, mirroring the original
// touch UI's integer input filter.
func digitsOnly(s string) error {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight(), 3)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		// The modal swallows keys until dismissed.
		if m.errMsg != "" {
			switch msg.String() {
			case "enter", "esc":
				m.errMsg = ""
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.scaleAction()

		case "r":
			// The digit filter keeps letters out of the field, so plain
			// keys are free to act as buttons.
			m.reset()
			return m, nil

		case "c":
			m.showComparison = !m.showComparison
			m.refreshContent()
			if m.fatalErr != nil {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// scaleAction runs the validate/scale pipeline on the field contents.
// Validation failures open the error modal; internal failures abort the
// program.
func (m Model) scaleAction() (tea.Model, tea.Cmd) {
	input := m.input.Value()

	servings, err := recipe.ValidateServings(input)
	if err != nil {
		if !errors.IsUserFacing(err) {
			m.fatalErr = err
			return m, tea.Quit
		}
		m.log.Debug("validation failed", "input", input, "reason", err.Error())
		m.errMsg = err.Error()
		return m, nil
	}

	factor, err := recipe.ScalingFactor(recipe.OriginalServings, servings)
	if err != nil {
		m.fatalErr = err
		return m, tea.Quit
	}

	scaled, err := recipe.Scale(recipe.Original(), factor)
	if err != nil {
		m.fatalErr = err
		return m, tea.Quit
	}

	m.log.Debug("scaled", "servings", servings, "factor", factor.String())
	m.servings = servings
	m.factor = factor
	m.scaled = scaled
	m.refreshContent()
	if m.fatalErr != nil {
		m.quitting = true
		return m, tea.Quit
	}
	m.viewport.GotoTop()
	return m, nil
}

// reset clears the input and restores the prompt state.
func (m *Model) reset() {
	m.input.SetValue("")
	m.servings = 0
	m.factor = decimal.Zero
	m.scaled = nil
	m.refreshContent()
	m.viewport.GotoTop()
}

// refreshContent rebuilds the scrollable results region.
func (m *Model) refreshContent() {
	if m.servings == 0 {
		m.viewport.SetContent(m.styles.Muted.Render(promptText))
		return
	}

	var b strings.Builder

	if m.factor.Equal(decimal.NewFromInt(1)) {
		b.WriteString(m.styles.Success.Render("No scaling needed! Use the original recipe."))
		b.WriteString("\n\n")
		b.WriteString(render.RecipeBlock(recipe.Original(), recipe.OriginalServings, m.styles))
	} else {
		b.WriteString(render.FactorLine(m.factor, m.styles))
		b.WriteString("\n\n")
		b.WriteString(render.RecipeBlock(m.scaled, m.servings, m.styles))
	}

	if m.showComparison && !m.factor.Equal(decimal.NewFromInt(1)) {
		table, err := render.ComparisonTable(recipe.Original(), m.scaled, recipe.OriginalServings, m.servings)
		if err != nil {
			// Broken Scale contract; the caller quits with fatalErr set.
			m.fatalErr = err
			return
		}
		b.WriteString("\n")
		b.WriteString(table)
	}

	m.viewport.SetContent(b.String())
}

// headerHeight is the number of rows the header, input row, and help line
// occupy above the viewport.
func headerHeight() int {
	return 6
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	if m.errMsg != "" {
		return m.modalView()
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("🍰 Grand Maw's Cookie Recipe"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Original: %d servings", recipe.OriginalServings)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Prompt.Render("How many servings?"))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.styles.Help.Render("enter scale • r reset • c comparison • ↑/↓ scroll • esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.viewport.View())

	return b.String()
}

// modalView renders the validation error as a centered dialog, the analog
// of the touch UI's error popup.
func (m Model) modalView() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.ModalTitle.Render("Input Error"),
		"",
		m.errMsg,
		"",
		m.styles.Help.Render("press enter to dismiss"),
	)
	box := m.styles.Modal.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// FatalErr exposes a broken-invariant error recorded during the session.
// The app wrapper checks it after the program exits.
func (m Model) FatalErr() error {
	return m.fatalErr
}
