package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Setenv registers the restore; the variable itself must be absent.
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })

	result := Code.Sprint("passmap generate gatech")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "passmap obtain gatech", "`passmap obtain gatech`"},
		{"Path has no decoration", Path, ".map.json", ".map.json"},
		{"Flag has no decoration", Flag, "--show", "--show"},
		{"Secret is left verbatim", Secret, "AbCdEfGh", "AbCdEfGh"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "gatech", "'gatech'"},
		{"Muted adds parentheses", Muted, "3 entries", "(3 entries)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	want := "`passmap generate gatech 10`"
	if got := Code.Sprintf("passmap generate %s %d", "gatech", 10); got != want {
		t.Errorf("Code.Sprintf() = %q, want %q", got, want)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "\n"},
		{"done", "done\n"},
		{"done\n", "done\n"},
	}

	for _, tt := range tests {
		if got := EnsureNewline(tt.input); got != tt.want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
