// Package output provides terminal presentation for rendered metrics
// trees: a color scheme for segment headers, leaf names, statistic
// labels and values, plus TTY detection for deciding when to apply it.
package output
