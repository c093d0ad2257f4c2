package normalize

import (
	"strings"
	"testing"
)

func TestFlatten_CollapsesAllWhitespaceRuns(t *testing.T) {
	in := "  A\tpaper \r\n about \n\n  extraction \t"
	got := Flatten(in)
	if got != "A paper about extraction" {
		t.Fatalf("unexpected flatten result: %q", got)
	}
}

func TestFlatten_Invariants(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"one",
		"a  b\t\tc\n\nd",
		"\n leading and trailing \n",
		"already flat text",
	}
	for _, in := range cases {
		got := Flatten(in)
		if strings.Contains(got, "  ") {
			t.Fatalf("Flatten(%q) contains adjacent spaces: %q", in, got)
		}
		if got != strings.TrimSpace(got) {
			t.Fatalf("Flatten(%q) not trimmed: %q", in, got)
		}
		if again := Flatten(got); again != got {
			t.Fatalf("Flatten not idempotent on %q: %q vs %q", in, got, again)
		}
	}
}

func TestLines_PreservesLineBoundaries(t *testing.T) {
	in := "Title  Line\n\n  body \t text \nlast"
	got := Lines(in)
	want := []string{"Title Line", "", "body text", "last"}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestJoin_RoundTripsLines(t *testing.T) {
	lines := []string{"a", "", "b"}
	if got := Join(lines); got != "a\n\nb" {
		t.Fatalf("unexpected join: %q", got)
	}
}
