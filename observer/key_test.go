package observer

import (
	"testing"
)

func TestKeyParts(t *testing.T) {
	tests := []struct {
		name         string
		key          Key
		expectedPath []string
		expectedLeaf string
	}{
		{
			name:         "root-level name",
			key:          NewKey("connect_time"),
			expectedPath: []string{},
			expectedLeaf: "connect_time",
		},
		{
			name:         "nested name",
			key:          NewKey("server.msgs_sent"),
			expectedPath: []string{"server"},
			expectedLeaf: "msgs_sent",
		},
		{
			name:         "deeply nested name",
			key:          NewKey("app.server.http.requests"),
			expectedPath: []string{"app", "server", "http"},
			expectedLeaf: "requests",
		},
		{
			name:         "single tag",
			key:          NewKey("requests", Label{Key: "method", Value: "GET"}),
			expectedPath: []string{},
			expectedLeaf: `requests{method="GET"}`,
		},
		{
			name: "tags keep caller order",
			key: NewKey("requests",
				Label{Key: "zone", Value: "us-east"},
				Label{Key: "method", Value: "POST"},
			),
			expectedPath: []string{},
			expectedLeaf: `requests{zone="us-east",method="POST"}`,
		},
		{
			name:         "nested name with tag",
			key:          NewKey("server.requests", Label{Key: "method", Value: "GET"}),
			expectedPath: []string{"server"},
			expectedLeaf: `requests{method="GET"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, leaf := tt.key.Parts()

			if len(path) != len(tt.expectedPath) {
				t.Fatalf("Parts() path = %v, want %v", path, tt.expectedPath)
			}
			for i := range path {
				if path[i] != tt.expectedPath[i] {
					t.Fatalf("Parts() path = %v, want %v", path, tt.expectedPath)
				}
			}
			if leaf != tt.expectedLeaf {
				t.Errorf("Parts() leaf = %q, want %q", leaf, tt.expectedLeaf)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	plain := NewKey("server.msgs_sent")
	if plain.String() != "server.msgs_sent" {
		t.Errorf("String() = %q, want %q", plain.String(), "server.msgs_sent")
	}

	tagged := NewKey("requests", Label{Key: "method", Value: "GET"})
	if tagged.String() != `requests{method="GET"}` {
		t.Errorf("String() = %q, want %q", tagged.String(), `requests{method="GET"}`)
	}
}

func TestKeyPartsPanicsOnEmptyName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Parts() on an empty name did not panic")
		}
	}()

	NewKey("").Parts()
}
