package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a document validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateDocument validates a parsed snapshot document.
func ValidateDocument(doc *Document) []ValidationError {
	var errors []ValidationError

	for i, q := range doc.Quantiles {
		if q < 0.0 || q > 1.0 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("quantiles[%d]", i),
				Message: fmt.Sprintf("quantile %v is outside [0.0, 1.0]", q),
			})
		}
	}

	for i, event := range doc.Events {
		errors = append(errors, validateEvent(i, event)...)
	}

	return errors
}

// validateEvent validates a single observation event.
func validateEvent(index int, event Event) []ValidationError {
	var errors []ValidationError

	path := func(field string) string {
		return fmt.Sprintf("events[%d].%s", index, field)
	}

	switch event.Type {
	case EventCounter, EventGauge, EventHistogram:
	case "":
		errors = append(errors, ValidationError{
			Path:    path("type"),
			Message: "type is required",
		})
	default:
		errors = append(errors, ValidationError{
			Path:    path("type"),
			Message: fmt.Sprintf("invalid type: %s (want counter, gauge or histogram)", event.Type),
		})
	}

	if event.Name == "" {
		errors = append(errors, ValidationError{
			Path:    path("name"),
			Message: "name is required",
		})
	}

	for i, tag := range event.Tags {
		if !strings.Contains(tag, "=") {
			errors = append(errors, ValidationError{
				Path:    path(fmt.Sprintf("tags[%d]", i)),
				Message: fmt.Sprintf("tag %q is not in key=value form", tag),
			})
		}
	}

	switch event.Type {
	case EventCounter:
		if event.Value < 0 {
			errors = append(errors, ValidationError{
				Path:    path("value"),
				Message: "counter value cannot be negative",
			})
		}
	case EventHistogram:
		if len(event.Values) == 0 {
			errors = append(errors, ValidationError{
				Path:    path("values"),
				Message: "histogram requires at least one sample",
			})
		}
	}

	return errors
}

// ParseTags splits key=value tag strings into label pairs, preserving
// document order. Tags without a separator were rejected by validation.
func ParseTags(tags []string) [][2]string {
	labels := make([][2]string, 0, len(tags))
	for _, tag := range tags {
		key, value, _ := strings.Cut(tag, "=")
		labels = append(labels, [2]string{key, value})
	}
	return labels
}
