package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/textobserver/internal/config"
	"github.com/wesleyorama2/textobserver/internal/output"
	"github.com/wesleyorama2/textobserver/observer"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Replay a snapshot document and print the rendered metrics tree",
	Long: `Render loads a snapshot document (YAML or JSON), replays its observation
events through the observer and prints the resulting text tree.

Counters and gauges become "<name>: <value>" lines; histogram samples are
merged per metric identity and reported as a sample count plus one line
per configured quantile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantilesFlag, _ := cmd.Flags().GetString("quantiles")
		noColor, _ := cmd.Flags().GetBool("no-color")
		rootLabel, _ := cmd.Flags().GetString("root-label")

		doc, err := config.LoadDocument(args[0])
		if err != nil {
			return err
		}

		quantiles := doc.Quantiles
		if quantilesFlag != "" {
			quantiles, err = parseQuantilesFlag(quantilesFlag)
			if err != nil {
				return err
			}
		}

		rendered, err := renderDocument(doc, quantiles)
		if err != nil {
			return err
		}

		if rootLabel != "" {
			rendered = wrapWithLabel(rootLabel, rendered)
		}

		if !output.IsTerminal(cmd.OutOrStdout()) {
			noColor = true
		}
		formatter := output.NewFormatter(noColor)
		fmt.Fprint(cmd.OutOrStdout(), formatter.Colorize(rendered))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("quantiles", "q", "", "Comma-separated fractional quantiles for histograms (overrides the document)")
	renderCmd.Flags().Bool("no-color", false, "Disable colorized output")
	renderCmd.Flags().String("root-label", "", "Wrap the output in a top-level label (e.g. \"root\")")
}

// renderDocument replays the document's events through a fresh observer
// and returns the rendered snapshot.
func renderDocument(doc *config.Document, quantiles []float64) (string, error) {
	builder := observer.NewBuilder()
	if len(quantiles) > 0 {
		builder.WithQuantiles(quantiles)
	}
	obs := builder.Build()

	for _, event := range doc.Events {
		key := eventKey(event)
		switch event.Type {
		case config.EventCounter:
			obs.ObserveCounter(key, uint64(event.Value))
		case config.EventGauge:
			obs.ObserveGauge(key, event.Value)
		case config.EventHistogram:
			obs.ObserveHistogram(key, event.Values)
		default:
			return "", fmt.Errorf("unknown event type: %s", event.Type)
		}
	}

	return obs.Render(), nil
}

// eventKey builds the metric identity for an event, keeping tags in
// document order.
func eventKey(event config.Event) observer.Key {
	pairs := config.ParseTags(event.Tags)
	labels := make([]observer.Label, 0, len(pairs))
	for _, pair := range pairs {
		labels = append(labels, observer.Label{Key: pair[0], Value: pair[1]})
	}
	return observer.NewKey(event.Name, labels...)
}

// parseQuantilesFlag parses a comma-separated list of fractional
// quantile values.
func parseQuantilesFlag(flag string) ([]float64, error) {
	parts := strings.Split(flag, ",")
	quantiles := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantile %q: %w", part, err)
		}
		if value < 0.0 || value > 1.0 {
			return nil, fmt.Errorf("quantile %v is outside [0.0, 1.0]", value)
		}
		quantiles = append(quantiles, value)
	}
	return quantiles, nil
}

// wrapWithLabel nests the rendered tree under a top-level label,
// indenting every non-empty line one further level.
func wrapWithLabel(label, rendered string) string {
	var out strings.Builder
	out.WriteString(label)
	out.WriteString(":\n")

	for _, line := range strings.Split(strings.TrimSuffix(rendered, "\n"), "\n") {
		if line == "" {
			continue
		}
		out.WriteString("  ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}
