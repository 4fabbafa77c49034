package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	color.NoColor = false
	defer func() { color.NoColor = true }()

	// Code formatter should not have backticks when color is enabled.
	result := Code.Sprint("envstash init")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks when color is enabled, got: %s", result)
	}

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes when color is enabled, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	// Set NO_COLOR for this test.
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "envstash init", "`envstash init`"},
		{"Path has no decoration", Path, "~/.local/share/envstash", "~/.local/share/envstash"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "API_KEY", "'API_KEY'"},
		{"Muted adds parentheses", Muted, "nothing to do", "(nothing to do)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.formatter.Sprint(tt.input)
			if got != tt.want {
				t.Errorf("%s.Sprint(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("text"); got != "text\n" {
		t.Errorf("EnsureNewline(%q) = %q", "text", got)
	}
	if got := EnsureNewline("text\n"); got != "text\n" {
		t.Errorf("EnsureNewline(%q) = %q", "text\n", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("EnsureNewline(%q) = %q", "", got)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"supersecret", "sup***"},
		{"abcd", "abc***"},
		{"abc", "***"},
		{"", "***"},
	}

	for _, tt := range tests {
		if got := Mask(tt.input); got != tt.want {
			t.Errorf("Mask(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
