package ident

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if !strings.HasPrefix(id, "it_") {
			t.Fatalf("id %q missing prefix", id)
		}
		if len(id) != len("it_")+8 {
			t.Fatalf("id %q has unexpected length", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
