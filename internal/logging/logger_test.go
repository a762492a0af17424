package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelDebug)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	logger.Info("servings validated", "servings", 24)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cookiescale.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, data)
	}
	if entry["msg"] != "servings validated" {
		t.Errorf("msg = %v, want %q", entry["msg"], "servings validated")
	}
	if entry["servings"] != float64(24) {
		t.Errorf("servings = %v, want 24", entry["servings"])
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Join(dir, "cookiescale.log")); err != nil {
		t.Errorf("log file was not created: %v", err)
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelWarn)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	logger.Debug("below threshold")
	logger.Info("also below threshold")
	logger.Warn("at threshold")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "cookiescale.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if strings.Contains(content, "below threshold") {
		t.Error("debug/info messages were written at warn level")
	}
	if !strings.Contains(content, "at threshold") {
		t.Error("warn message was filtered out at warn level")
	}
}

func TestWithShell(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(dir, LevelDebug)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	child := logger.WithShell("console").With("factor", "2")
	child.Debug("scaled")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "cookiescale.log"))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["shell"] != "console" {
		t.Errorf("shell = %v, want %q", entry["shell"], "console")
	}
	if entry["factor"] != "2" {
		t.Errorf("factor = %v, want %q", entry["factor"], "2")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "debug", want: "DEBUG"},
		{input: "INFO", want: "INFO"},
		{input: "Warn", want: "WARN"},
		{input: "error", want: "ERROR"},
		{input: "nonsense", want: "INFO"},
		{input: "", want: "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input).String(); got != tt.want {
				t.Errorf("parseLevel(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// Must not panic or write anywhere.
	logger.Info("dropped")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on discard logger: %v", err)
	}
}
