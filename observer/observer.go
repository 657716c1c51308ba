package observer

import (
	"fmt"
	"math"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/wesleyorama2/textobserver/internal/tree"
	"github.com/wesleyorama2/textobserver/quantile"
)

// Config contains configuration for a TextObserver.
type Config struct {
	// Quantiles are the fractional quantiles reported for every
	// histogram, in the order their lines should be generated.
	// Defaults to 0.0, 0.5, 0.9, 0.95, 0.99, 0.999 and 1.0.
	Quantiles []float64

	// HistogramMin is the minimum recordable histogram value (default: 1)
	HistogramMin int64

	// HistogramMax is the maximum recordable histogram value
	// (default: math.MaxInt64 / 2)
	HistogramMax int64

	// HistogramSigFigs is the number of significant figures kept by the
	// underlying HDR histogram (default: 3)
	HistogramSigFigs int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Quantiles:        []float64{0.0, 0.5, 0.9, 0.95, 0.99, 0.999, 1.0},
		HistogramMin:     1,
		HistogramMax:     math.MaxInt64 / 2,
		HistogramSigFigs: 3,
	}
}

// Builder produces configured TextObserver instances.
type Builder struct {
	config Config
}

// NewBuilder creates a Builder with the default configuration.
//
// The defaults report these quantiles for every histogram: 0.0, 0.5,
// 0.9, 0.95, 0.99, 0.999 and 1.0. Use WithQuantiles to customize them.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a Builder with a custom configuration.
// Zero fields fall back to their defaults.
func NewBuilderWithConfig(config Config) *Builder {
	defaults := DefaultConfig()
	if len(config.Quantiles) == 0 {
		config.Quantiles = defaults.Quantiles
	}
	if config.HistogramMin == 0 {
		config.HistogramMin = defaults.HistogramMin
	}
	if config.HistogramMax == 0 {
		config.HistogramMax = defaults.HistogramMax
	}
	if config.HistogramSigFigs == 0 {
		config.HistogramSigFigs = defaults.HistogramSigFigs
	}
	return &Builder{config: config}
}

// WithQuantiles replaces the configured quantiles and returns the
// builder for chaining.
func (b *Builder) WithQuantiles(quantiles []float64) *Builder {
	b.config.Quantiles = quantiles
	return b
}

// Build creates a TextObserver from the builder's configuration.
func (b *Builder) Build() *TextObserver {
	return &TextObserver{
		quantiles: quantile.Parse(b.config.Quantiles),
		structure: tree.New(),
		histos:    make(map[string]*histogramEntry),
		config:    b.config,
	}
}

// histogramEntry merges every observation for one metric identity into
// a single HDR histogram until render time.
type histogramEntry struct {
	key  Key
	hist *hdrhistogram.Histogram
}

// TextObserver records metric observations and renders them as a
// hierarchical, alphabetically sorted text snapshot.
//
// Counters and gauges are formatted and inserted into the tree as they
// arrive; histogram samples are merged per identity and only turned
// into count/quantile lines when Render is called.
//
// A TextObserver is exclusively owned by one logical caller per
// snapshot cycle. It is not safe for concurrent use.
type TextObserver struct {
	quantiles []quantile.Quantile
	structure *tree.Tree
	histos    map[string]*histogramEntry
	config    Config
}

// ObserveCounter records a single counter value.
func (o *TextObserver) ObserveCounter(key Key, value uint64) {
	path, name := key.Parts()
	o.structure.Insert(path, []string{fmt.Sprintf("%s: %d", name, value)})
}

// ObserveGauge records a single gauge value. Gauges are signed and may
// be negative; the rendered format is the same as for counters.
func (o *TextObserver) ObserveGauge(key Key, value int64) {
	path, name := key.Parts()
	o.structure.Insert(path, []string{fmt.Sprintf("%s: %d", name, value)})
}

// ObserveHistogram merges samples into the histogram for the given
// identity, creating it on first use.
//
// A sample the underlying histogram cannot represent is an
// unrecoverable internal error and panics: the caller is expected to
// have validated value ranges upstream.
func (o *TextObserver) ObserveHistogram(key Key, values []uint64) {
	id := key.String()
	entry, ok := o.histos[id]
	if !ok {
		entry = &histogramEntry{
			key: key,
			hist: hdrhistogram.New(
				o.config.HistogramMin,
				o.config.HistogramMax,
				o.config.HistogramSigFigs,
			),
		}
		o.histos[id] = entry
	}

	for _, value := range values {
		if value > math.MaxInt64 {
			panic(fmt.Sprintf("failed to observe histogram value: %d overflows the recordable range", value))
		}
		if err := entry.hist.RecordValue(int64(value)); err != nil {
			panic(fmt.Sprintf("failed to observe histogram value: %v", err))
		}
	}
}

// Render flushes all accumulated histograms into the tree and returns
// the rendered snapshot text.
//
// Render is destructive: it drains both the histogram store and the
// tree, so it is called once per snapshot cycle. Calling it again
// without intervening observations returns the empty string. The
// returned text uses \n terminators and two-space indentation per
// nesting level, with no outer wrapper label; the root level itself is
// unindented and unlabeled.
func (o *TextObserver) Render() string {
	for id, entry := range o.histos {
		path, name := entry.key.Parts()
		o.structure.Insert(path, histogramLines(name, entry.hist, o.quantiles))
		delete(o.histos, id)
	}

	return o.structure.Render()
}

// histogramLines formats the count line followed by one line per
// configured quantile, in configuration order.
func histogramLines(name string, hist *hdrhistogram.Histogram, quantiles []quantile.Quantile) []string {
	lines := make([]string, 0, len(quantiles)+1)

	lines = append(lines, fmt.Sprintf("%s count: %d", name, hist.TotalCount()))
	for _, q := range quantiles {
		var value int64
		switch q.Value() {
		case 0.0:
			value = hist.Min()
		case 1.0:
			value = hist.Max()
		default:
			value = hist.ValueAtQuantile(q.Value() * 100)
		}
		lines = append(lines, fmt.Sprintf("%s %s: %d", name, q.Label(), value))
	}

	return lines
}
