package output

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestColorSchemes(t *testing.T) {
	defaultScheme := DefaultColorScheme()
	if defaultScheme.Segment == nil {
		t.Error("DefaultColorScheme.Segment should not be nil")
	}
	if defaultScheme.Name == nil {
		t.Error("DefaultColorScheme.Name should not be nil")
	}
	if defaultScheme.Label == nil {
		t.Error("DefaultColorScheme.Label should not be nil")
	}
	if defaultScheme.Value == nil {
		t.Error("DefaultColorScheme.Value should not be nil")
	}
	if defaultScheme.Tag == nil {
		t.Error("DefaultColorScheme.Tag should not be nil")
	}
}

func TestColorizeNoColorIsIdentity(t *testing.T) {
	rendered := "configuration_reloads: 2\n" +
		"server:\n" +
		"  msgs_received: 42\n" +
		"  connect_time p50: 1934\n" +
		"  requests{method=\"GET\"}: 7\n"

	formatter := NewFormatter(true)
	if got := formatter.Colorize(rendered); got != rendered {
		t.Errorf("Colorize() with colors disabled = %q, want input unchanged", got)
	}
}

func TestColorizePreservesTextContent(t *testing.T) {
	// Force colors on so escape sequences are actually emitted
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	rendered := "server:\n" +
		"  msgs_sent: 13\n" +
		"  connect_time count: 4\n" +
		"  connect_time p999: 5330\n" +
		"  requests{method=\"GET\"}: 7\n"

	formatter := NewFormatter(false)
	got := formatter.Colorize(rendered)

	stripped := stripANSI(got)
	if stripped != rendered {
		t.Errorf("Colorize() changed the text content:\ngot  %q\nwant %q", stripped, rendered)
	}
	if got == rendered {
		t.Error("Colorize() emitted no escape sequences with colors forced on")
	}
}

func TestIsStatLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected bool
	}{
		{"count", true},
		{"min", true},
		{"max", true},
		{"p50", true},
		{"p999", true},
		{"p", false},
		{"pxx", false},
		{"total", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isStatLabel(tt.label); got != tt.expected {
			t.Errorf("isStatLabel(%q) = %v, want %v", tt.label, got, tt.expected)
		}
	}
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
