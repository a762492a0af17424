// Package console implements the interactive text shell: prompt for a
// serving count, run the validate/scale/format pipeline, render the result,
// and loop until the user declines to continue. End-of-input is a clean
// exit, never an error.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"cookiescale/internal/errors"
	"cookiescale/internal/logging"
	"cookiescale/internal/recipe"
	"cookiescale/internal/render"
	"cookiescale/internal/tui/styles"
)

const dividerWidth = 70

// Shell is the interactive console. It owns no state besides its wiring;
// every loop iteration derives everything from the user's input.
type Shell struct {
	in             io.Reader
	out            io.Writer
	styles         styles.Styles
	log            *logging.Logger
	showComparison bool
}

// New creates a console shell reading from in and writing to out.
// showComparison controls whether the side-by-side table is offered after
// scaling.
func New(in io.Reader, out io.Writer, st styles.Styles, log *logging.Logger, showComparison bool) *Shell {
	if log == nil {
		log = logging.Discard()
	}
	return &Shell{
		in:             in,
		out:            out,
		styles:         st,
		log:            log.WithShell("console"),
		showComparison: showComparison,
	}
}

// Run drives the prompt loop. It returns nil on a user-initiated exit or
// end of input, and an error only for internal failures (broken pipeline
// invariants, write errors).
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.in)

	s.printBanner()

	for {
		fmt.Fprintf(s.out, "\n%s ", s.styles.Prompt.Render(
			fmt.Sprintf("How many servings do you need? (%d-%d):", recipe.MinServings, recipe.MaxServings)))

		line, ok := s.readLine(scanner)
		if !ok {
			fmt.Fprintln(s.out, "\n\n"+s.styles.Muted.Render("Input closed. Exiting."))
			return nil
		}

		servings, err := recipe.ValidateServings(line)
		if err != nil {
			if !errors.IsUserFacing(err) {
				return err
			}
			s.log.Debug("validation failed", "input", line, "reason", err.Error())
			fmt.Fprintln(s.out, s.styles.Error.Render("✗ "+err.Error()))
			continue
		}

		if err := s.showScaled(scanner, servings); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "\n%s ", s.styles.Prompt.Render("Scale for a different number of servings? (y/n):"))
		answer, ok := s.readLine(scanner)
		if !ok || !isYes(answer) {
			fmt.Fprintln(s.out, "\n"+s.styles.Success.Render("Happy cooking! Enjoy your recipe!"))
			return nil
		}
	}
}

// showScaled runs the scaling pipeline for a validated serving count and
// renders the result. Pipeline errors here are internal by construction
// and abort the shell.
func (s *Shell) showScaled(scanner *bufio.Scanner, servings int) error {
	factor, err := recipe.ScalingFactor(recipe.OriginalServings, servings)
	if err != nil {
		return err
	}
	s.log.Debug("scaling", "servings", servings, "factor", factor.String())

	original := recipe.Original()

	if factor.Equal(decimal.NewFromInt(1)) {
		fmt.Fprintln(s.out, "\n"+s.styles.Success.Render("No scaling needed! Use the original recipe."))
		s.printDivider()
		fmt.Fprintln(s.out, render.RecipeBlock(original, recipe.OriginalServings, s.styles))
		s.printDivider()
		return nil
	}

	scaled, err := recipe.Scale(original, factor)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n"+render.FactorLine(factor, s.styles))
	s.printDivider()
	fmt.Fprintln(s.out, render.RecipeBlock(scaled, servings, s.styles))
	s.printDivider()

	if !s.showComparison {
		return nil
	}

	fmt.Fprintf(s.out, "\n%s ", s.styles.Prompt.Render("Show comparison with original recipe? (y/n):"))
	answer, ok := s.readLine(scanner)
	if !ok || !isYes(answer) {
		return nil
	}

	table, err := render.ComparisonTable(original, scaled, recipe.OriginalServings, servings)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\n"+table)
	return nil
}

// readLine reads the next input line. ok is false at end of input.
func (s *Shell) readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

func (s *Shell) printBanner() {
	s.printDivider()
	fmt.Fprintln(s.out, s.styles.Title.Render("🍰  RECIPE QUANTITY ADJUSTER"))
	fmt.Fprintln(s.out, s.styles.Subtitle.Render(
		fmt.Sprintf("Original recipe serves: %d people", recipe.OriginalServings)))
	s.printDivider()
}

func (s *Shell) printDivider() {
	fmt.Fprintln(s.out, s.styles.Muted.Render(strings.Repeat("─", dividerWidth)))
}

// isYes reports whether a prompt answer means yes.
func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
