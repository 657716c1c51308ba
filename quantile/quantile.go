package quantile

import (
	"strconv"
	"strings"
)

// Quantile pairs a fractional quantile value in [0.0, 1.0] with its
// human-readable label.
type Quantile struct {
	value float64
	label string
}

// New creates a Quantile for the given fractional value, clamping it
// into [0.0, 1.0] and deriving its label.
func New(value float64) Quantile {
	clamped := value
	if clamped < 0.0 {
		clamped = 0.0
	}
	if clamped > 1.0 {
		clamped = 1.0
	}

	return Quantile{
		value: clamped,
		label: Label(clamped),
	}
}

// Parse converts raw fractional values into Quantiles.
//
// Values are clamped into [0.0, 1.0] and kept in the order given; the
// caller's configuration order is the order histogram lines are later
// generated in.
func Parse(values []float64) []Quantile {
	quantiles := make([]Quantile, 0, len(values))
	for _, value := range values {
		quantiles = append(quantiles, New(value))
	}
	return quantiles
}

// Value returns the fractional quantile value.
func (q Quantile) Value() float64 {
	return q.value
}

// Label returns the display label for the quantile.
func (q Quantile) Label() string {
	return q.label
}

// Label derives the display label for a fractional quantile value:
// 0.0 is "min", 1.0 is "max", and anything in between is the percentile
// with the decimal point removed and a "p" prefix, so 0.5 is "p50" and
// 0.999 is "p999".
func Label(value float64) string {
	switch value {
	case 0.0:
		return "min"
	case 1.0:
		return "max"
	}

	percentile := strconv.FormatFloat(value*100, 'f', -1, 64)
	return "p" + strings.ReplaceAll(percentile, ".", "")
}
