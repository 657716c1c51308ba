// Package quantile provides parsing and labeling of histogram quantiles.
//
// A quantile is a fractional position in a distribution: 0.0 is the
// minimum, 1.0 the maximum, 0.5 the median. When rendered for humans the
// fractional value is translated into the common "pXXX" notation:
//
//	quantile.Label(0.0)   // "min"
//	quantile.Label(0.5)   // "p50"
//	quantile.Label(0.999) // "p999"
//	quantile.Label(1.0)   // "max"
//
// Parse normalizes a caller-supplied slice of raw fractional values,
// clamping each into [0.0, 1.0] while preserving the given order:
//
//	quantiles := quantile.Parse([]float64{0.0, 0.5, 0.99, 1.0})
package quantile
