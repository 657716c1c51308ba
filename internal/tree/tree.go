// Package tree implements the hierarchical namespace structure that
// accumulates formatted metric lines and renders them as sorted,
// indented text.
package tree

import (
	"sort"
	"strings"
)

// Tree is one level of the metrics namespace.
//
// A node holds the formatted lines that live directly at its level plus
// a child node per path segment seen beneath it. Children are created
// lazily on first insertion and are reachable only through the exact
// segment sequence used to insert them.
type Tree struct {
	level   int
	current []string
	next    map[string]*Tree
}

// New returns an empty root node at level 0.
func New() *Tree {
	return withLevel(0)
}

func withLevel(level int) *Tree {
	return &Tree{
		level: level,
		next:  make(map[string]*Tree),
	}
}

// Insert adds pre-formatted lines beneath the given path, creating
// intermediate nodes as needed.
//
// Lines are indented for the depth they land at and appended after any
// lines already present: repeated insertion under the same leaf
// accumulates, it does not overwrite.
func (t *Tree) Insert(path []string, lines []string) {
	if len(path) == 0 {
		indent := strings.Repeat("  ", t.level)
		for _, line := range lines {
			t.current = append(t.current, indent+line)
		}
		return
	}

	name := path[0]
	inner, ok := t.next[name]
	if !ok {
		inner = withLevel(t.level + 1)
		t.next[name] = inner
	}
	inner.Insert(path[1:], lines)
}

// sortEntry is either an already-formatted line or a named subtree.
// Both kinds share one sort key space: the line's own text or the
// subtree's segment name.
type sortEntry struct {
	name  string
	inner *Tree // nil for an inline line
}

// Render returns the sorted, indented text for this node and everything
// beneath it.
//
// Rendering drains the node as it goes: a second call without new
// insertions returns the empty string.
func (t *Tree) Render() string {
	indent := strings.Repeat("  ", t.level)

	sorted := make([]sortEntry, 0, len(t.current)+len(t.next))
	for _, line := range t.current {
		sorted = append(sorted, sortEntry{name: line})
	}
	for name, inner := range t.next {
		sorted = append(sorted, sortEntry{name: name, inner: inner})
	}
	t.current = nil
	t.next = make(map[string]*Tree)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].name < sorted[j].name
	})

	var out strings.Builder
	for _, entry := range sorted {
		if entry.inner == nil {
			out.WriteString(entry.name)
			out.WriteString("\n")
			continue
		}

		out.WriteString(indent)
		out.WriteString(entry.name)
		out.WriteString(":\n")
		out.WriteString(entry.inner.Render())
	}

	return out.String()
}
