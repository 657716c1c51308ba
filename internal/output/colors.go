package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for the elements of a rendered
// metrics tree
type ColorScheme struct {
	Segment *color.Color // namespace segment headers ("server:")
	Name    *color.Color // metric leaf names
	Label   *color.Color // quantile labels (min, p50, max) and "count"
	Value   *color.Color // observed values
	Tag     *color.Color // {k="v"} suffixes
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Segment: color.New(color.FgCyan, color.Bold),
		Name:    color.New(color.FgWhite),
		Label:   color.New(color.FgYellow),
		Value:   color.New(color.FgGreen),
		Tag:     color.New(color.FgMagenta),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Segment.DisableColor()
	scheme.Name.DisableColor()
	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Tag.DisableColor()

	return scheme
}
