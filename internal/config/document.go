package config

// Event type names accepted in a snapshot document.
const (
	EventCounter   = "counter"
	EventGauge     = "gauge"
	EventHistogram = "histogram"
)

// Document represents a snapshot document: an ordered list of
// observation events plus optional quantile configuration.
type Document struct {
	// Quantiles overrides the default quantile set used for histogram
	// events. Values are fractional, in [0.0, 1.0].
	Quantiles []float64 `yaml:"quantiles,omitempty" json:"quantiles,omitempty"`

	// Events are replayed into the observer in document order.
	Events []Event `yaml:"events" json:"events"`
}

// Event represents a single observation event.
type Event struct {
	// Type is one of counter, gauge or histogram.
	Type string `yaml:"type" json:"type"`

	// Name is the dot-separated hierarchical metric name.
	Name string `yaml:"name" json:"name"`

	// Tags are key=value pairs attached to the metric identity, kept in
	// document order.
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`

	// Value carries the observed value for counter and gauge events.
	Value int64 `yaml:"value,omitempty" json:"value,omitempty"`

	// Values carries the observed samples for histogram events.
	Values []uint64 `yaml:"values,omitempty" json:"values,omitempty"`
}
