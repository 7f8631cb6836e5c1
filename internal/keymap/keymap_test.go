//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 2},
		{"radio context", "radio", 6},
		{"channels context", "channels", 3},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, kb := range result {
				if kb.Context != tt.context {
					t.Errorf("binding %v has context %q, want %q", kb.Keys, kb.Context, tt.context)
				}
			}
		})
	}
}

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, kb := range All {
		if len(kb.Keys) == 0 {
			t.Errorf("binding %q has no keys", kb.Action)
		}
		if kb.Description == "" {
			t.Errorf("binding %q has no description", kb.Action)
		}
		for _, key := range kb.Keys {
			if prev, ok := seen[key]; ok {
				t.Errorf("key %q bound to both %q and %q", key, prev, kb.Action)
			}
			seen[key] = kb.Action
		}
	}
}
