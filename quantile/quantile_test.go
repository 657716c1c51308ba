package quantile

import (
	"testing"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "zero is min", value: 0.0, expected: "min"},
		{name: "one is max", value: 1.0, expected: "max"},
		{name: "median", value: 0.5, expected: "p50"},
		{name: "ninetieth", value: 0.9, expected: "p90"},
		{name: "ninety-fifth", value: 0.95, expected: "p95"},
		{name: "ninety-ninth", value: 0.99, expected: "p99"},
		{name: "three nines", value: 0.999, expected: "p999"},
		{name: "four nines", value: 0.9999, expected: "p9999"},
		{name: "quarter", value: 0.25, expected: "p25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.value); got != tt.expected {
				t.Errorf("Label(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestNewClampsRange(t *testing.T) {
	if q := New(-0.5); q.Value() != 0.0 || q.Label() != "min" {
		t.Errorf("New(-0.5) = (%v, %q), want (0, min)", q.Value(), q.Label())
	}
	if q := New(1.5); q.Value() != 1.0 || q.Label() != "max" {
		t.Errorf("New(1.5) = (%v, %q), want (1, max)", q.Value(), q.Label())
	}
}

func TestParsePreservesOrder(t *testing.T) {
	quantiles := Parse([]float64{1.0, 0.5, 0.0})

	labels := make([]string, 0, len(quantiles))
	for _, q := range quantiles {
		labels = append(labels, q.Label())
	}

	expected := []string{"max", "p50", "min"}
	for i, label := range expected {
		if labels[i] != label {
			t.Fatalf("Parse labels = %v, want %v", labels, expected)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if quantiles := Parse(nil); len(quantiles) != 0 {
		t.Errorf("Parse(nil) returned %d quantiles, want 0", len(quantiles))
	}
}
