package observer

import (
	"strings"
)

// Label is a single key/value tag attached to a metric.
type Label struct {
	Key   string
	Value string
}

// Key identifies one observable quantity: a dot-separated hierarchical
// name plus an ordered list of labels.
//
// Two keys with the same name but different labels are distinct
// identities. Labels are rendered into the leaf display name in the
// order given; they are never re-sorted.
type Key struct {
	Name   string
	Labels []Label
}

// NewKey creates a Key for the given hierarchical name and labels.
func NewKey(name string, labels ...Label) Key {
	return Key{Name: name, Labels: labels}
}

// String renders the full key, label suffix included. It doubles as the
// identity used to merge repeated histogram observations.
func (k Key) String() string {
	return k.Name + k.labelSuffix()
}

// Parts splits the key into the tree-insertion path and the leaf
// display name. The path is every dot-separated segment except the
// last; the leaf is the last segment with the label suffix appended.
//
// A key with no leaf component is a contract violation and panics.
func (k Key) Parts() ([]string, string) {
	if k.Name == "" {
		panic("metric key name has no parts")
	}

	parts := strings.Split(k.Name, ".")
	leaf := parts[len(parts)-1] + k.labelSuffix()
	return parts[:len(parts)-1], leaf
}

// labelSuffix renders the labels as {k1="v1",k2="v2"}, or "" when there
// are none. Label order is the caller's order, unsorted.
func (k Key) labelSuffix() string {
	if len(k.Labels) == 0 {
		return ""
	}

	var suffix strings.Builder
	suffix.WriteString("{")
	for i, label := range k.Labels {
		if i > 0 {
			suffix.WriteString(",")
		}
		suffix.WriteString(label.Key)
		suffix.WriteString(`="`)
		suffix.WriteString(label.Value)
		suffix.WriteString(`"`)
	}
	suffix.WriteString("}")
	return suffix.String()
}
