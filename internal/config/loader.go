package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// LoadDocument loads a snapshot document from a YAML or JSON file,
// chosen by extension (.yaml/.yml or .json), and validates it.
func LoadDocument(path string) (*Document, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("document file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading document file: %w", err)
	}

	var doc *Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		doc, err = ParseYAML(data)
	case ".json":
		doc, err = ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported document format %q (want .yaml, .yml or .json)", ext)
	}
	if err != nil {
		return nil, err
	}

	if errs := ValidateDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid document: %s", joinErrors(errs))
	}

	return doc, nil
}

// ParseYAML parses a YAML snapshot document.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing YAML document: %w", err)
	}
	return &doc, nil
}

// ParseJSON parses a JSON snapshot document. The document is checked
// against the embedded JSON Schema first, so extraction can assume
// well-typed fields.
func ParseJSON(data []byte) (*Document, error) {
	if err := validateJSON(data); err != nil {
		return nil, err
	}

	var doc Document
	root := gjson.ParseBytes(data)

	root.Get("quantiles").ForEach(func(_, value gjson.Result) bool {
		doc.Quantiles = append(doc.Quantiles, value.Float())
		return true
	})

	root.Get("events").ForEach(func(_, raw gjson.Result) bool {
		event := Event{
			Type:  raw.Get("type").String(),
			Name:  raw.Get("name").String(),
			Value: raw.Get("value").Int(),
		}
		raw.Get("tags").ForEach(func(_, tag gjson.Result) bool {
			event.Tags = append(event.Tags, tag.String())
			return true
		})
		raw.Get("values").ForEach(func(_, sample gjson.Result) bool {
			event.Values = append(event.Values, sample.Uint())
			return true
		})
		doc.Events = append(doc.Events, event)
		return true
	})

	return &doc, nil
}

// joinErrors flattens validation errors into one message.
func joinErrors(errs []ValidationError) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}
