package quiz

import (
	"errors"
	"testing"
)

func TestAllCategories_Order(t *testing.T) {
	want := []string{"lavender", "cypress", "hinoki", "chamomile", "mint", "peony"}
	got := AllCategories()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.String() != want[i] {
			t.Errorf("AllCategories()[%d] = %s, want %s", i, c, want[i])
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %s", c.String(), got)
		}
	}

	for _, bad := range []string{"", "rose", "Lavender"} {
		if _, err := ParseCategory(bad); !errors.Is(err, ErrInvalidCategory) {
			t.Errorf("ParseCategory(%q) error = %v, want ErrInvalidCategory", bad, err)
		}
	}
}

func TestCategory_TextRoundTrip(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("chamomile")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "chamomile" {
		t.Errorf("MarshalText = %q, want chamomile", b)
	}

	if _, err := Category(99).MarshalText(); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("MarshalText(99) error = %v, want ErrInvalidCategory", err)
	}
}
