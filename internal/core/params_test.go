package core

import "testing"

func TestSnapshotLookupAndLines(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Board", Params: []Parameter{{Key: "span", Label: "Span", Value: "60"}}},
		{Params: []Parameter{{Key: "gen", Label: "Generation", Value: "3"}}},
	}}
	if v, ok := s.Lookup("gen"); !ok || v != "3" {
		t.Fatalf("Lookup(gen) = %q, %v", v, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatalf("Lookup found a missing key")
	}
	lines := s.Lines()
	want := []string{"Board", "  Span: 60", "  Generation: 3"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, expected %q", i, lines[i], want[i])
		}
	}
}
