package output

import (
	"strings"
)

// Formatter is responsible for colorizing rendered metrics tree text
// for terminal display.
//
// Colorizing is pure decoration: with colors disabled the output is
// byte-identical to the input.
type Formatter struct {
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		NoColor: noColor,
		scheme:  scheme,
	}
}

// Colorize applies the color scheme to every line of a rendered
// metrics tree.
func (f *Formatter) Colorize(rendered string) string {
	if f.NoColor {
		return rendered
	}

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		lines[i] = f.colorizeLine(line)
	}
	return strings.Join(lines, "\n")
}

// colorizeLine handles one line: a segment header ("server:"), a
// scalar line ("msgs_sent: 13") or a histogram statistic line
// ("connect_time p50: 1934").
func (f *Formatter) colorizeLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	// Segment headers end with a bare colon
	if strings.HasSuffix(trimmed, ":") && !strings.Contains(trimmed, ": ") {
		return indent + f.scheme.Segment.Sprint(trimmed)
	}

	idx := strings.LastIndex(trimmed, ": ")
	if idx < 0 {
		return line
	}
	name, value := trimmed[:idx], trimmed[idx+2:]

	return indent + f.colorizeName(name) + ": " + f.scheme.Value.Sprint(value)
}

// colorizeName splits off a trailing histogram statistic label
// (count, min, max, pNN) before coloring the leaf itself.
func (f *Formatter) colorizeName(name string) string {
	if idx := strings.LastIndex(name, " "); idx >= 0 && isStatLabel(name[idx+1:]) {
		return f.colorizeLeaf(name[:idx]) + " " + f.scheme.Label.Sprint(name[idx+1:])
	}
	return f.colorizeLeaf(name)
}

// colorizeLeaf colors a leaf name, tinting any {k="v"} tag suffix
// separately.
func (f *Formatter) colorizeLeaf(leaf string) string {
	if idx := strings.Index(leaf, "{"); idx >= 0 && strings.HasSuffix(leaf, "}") {
		return f.scheme.Name.Sprint(leaf[:idx]) + f.scheme.Tag.Sprint(leaf[idx:])
	}
	return f.scheme.Name.Sprint(leaf)
}

// isStatLabel reports whether s is a histogram statistic label:
// "count", "min", "max" or "p" followed by digits.
func isStatLabel(s string) bool {
	switch s {
	case "count", "min", "max":
		return true
	}
	if len(s) < 2 || s[0] != 'p' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
