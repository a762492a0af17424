package console

import (
	"strings"
	"testing"

	"cookiescale/internal/tui/styles"
)

// runTranscript drives the shell with scripted input lines and returns the
// full output.
func runTranscript(t *testing.T, input string, showComparison bool) string {
	t.Helper()

	var out strings.Builder
	shell := New(strings.NewReader(input), &out, styles.Default(), nil, showComparison)
	if err := shell.Run(); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	return out.String()
}

func TestRun_ScaleAndExit(t *testing.T) {
	out := runTranscript(t, "24\nn\nn\n", true)

	for _, want := range []string{
		"RECIPE QUANTITY ADJUSTER",
		"Original recipe serves: 12 people",
		"Scaling factor: 2.00x",
		"RECIPE FOR 24 SERVINGS",
		"6 cups Flour",
		"1 teaspoon Salt",
		"Happy cooking",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_InvalidThenValid(t *testing.T) {
	out := runTranscript(t, "abc\n12.5\n150\n6\nn\nn\n", true)

	for _, want := range []string{
		"Servings must be a valid number",
		"Servings must be a whole number",
		"Servings cannot exceed 100",
		"RECIPE FOR 6 SERVINGS",
		"1 1/2 cups Flour",
		"3/4 cups Milk",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_NoScalingNeeded(t *testing.T) {
	out := runTranscript(t, "12\nn\n", true)

	if !strings.Contains(out, "No scaling needed") {
		t.Error("output missing the no-scaling message")
	}
	if !strings.Contains(out, "RECIPE FOR 12 SERVINGS") {
		t.Error("output missing the original recipe")
	}
	if strings.Contains(out, "Scaling factor") {
		t.Error("factor line shown for the identity factor")
	}
	// The comparison offer only applies to scaled results.
	if strings.Contains(out, "Show comparison") {
		t.Error("comparison offered when nothing was scaled")
	}
}

func TestRun_Comparison(t *testing.T) {
	out := runTranscript(t, "24\ny\nn\n", true)

	for _, want := range []string{"Ingredient", "Original (12)", "New (24)", "3 cups", "6 cups"} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison output missing %q", want)
		}
	}
}

func TestRun_ComparisonDisabled(t *testing.T) {
	out := runTranscript(t, "24\nn\n", false)

	if strings.Contains(out, "Show comparison") {
		t.Error("comparison offered despite being disabled")
	}
}

func TestRun_EOFIsCleanExit(t *testing.T) {
	out := runTranscript(t, "", true)

	if !strings.Contains(out, "Input closed. Exiting.") {
		t.Error("EOF did not produce the clean-exit message")
	}
}

func TestRun_EOFAfterScaleIsCleanExit(t *testing.T) {
	// Input ends right after the servings line; the comparison and
	// continue prompts both hit EOF.
	out := runTranscript(t, "24\n", true)

	if !strings.Contains(out, "RECIPE FOR 24 SERVINGS") {
		t.Error("scaled recipe missing before EOF")
	}
	if !strings.Contains(out, "Happy cooking") {
		t.Error("EOF at the continue prompt did not exit cleanly")
	}
}

func TestRun_LoopsUntilDecline(t *testing.T) {
	out := runTranscript(t, "24\nn\ny\n6\nn\nn\n", true)

	if !strings.Contains(out, "RECIPE FOR 24 SERVINGS") || !strings.Contains(out, "RECIPE FOR 6 SERVINGS") {
		t.Error("shell did not loop through both requests")
	}
}
