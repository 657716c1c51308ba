package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/textobserver/internal/config"
)

func main() {
	outputPath := "sample-snapshot.yaml"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	data, err := yaml.Marshal(sampleDocument())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating sample document: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing sample document: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample snapshot document written to %s\n", outputPath)
	fmt.Printf("Render it with: textobserver render %s\n", outputPath)
}

// sampleDocument builds a document exercising every event type,
// nested scopes, tags and a custom quantile set.
func sampleDocument() *config.Document {
	return &config.Document{
		Quantiles: []float64{0.0, 0.5, 0.9, 0.99, 1.0},
		Events: []config.Event{
			{Type: config.EventCounter, Name: "configuration_reloads", Value: 2},
			{Type: config.EventCounter, Name: "server.msgs_received", Value: 42},
			{Type: config.EventCounter, Name: "server.msgs_sent", Value: 13},
			{Type: config.EventGauge, Name: "server.queue_depth", Value: -3},
			{
				Type:  config.EventCounter,
				Name:  "server.requests",
				Tags:  []string{"method=GET"},
				Value: 29,
			},
			{
				Type:  config.EventCounter,
				Name:  "server.requests",
				Tags:  []string{"method=POST"},
				Value: 11,
			},
			{
				Type:   config.EventHistogram,
				Name:   "server.connect_time",
				Values: []uint64{1334, 1934, 2501, 3822, 5330, 139389},
			},
		},
	}
}
