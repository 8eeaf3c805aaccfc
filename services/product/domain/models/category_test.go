package models

import "testing"

func TestParseCategory(t *testing.T) {
	t.Run("all enumerated values parse", func(t *testing.T) {
		for _, want := range Categories() {
			got, err := ParseCategory(want.String())
			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", want, err)
			}
			if got != want {
				t.Fatalf("expected %q, got %q", want, got)
			}
		}
	})

	t.Run("unknown value returns error", func(t *testing.T) {
		if _, err := ParseCategory("gadgets"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := ParseCategory(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if _, err := ParseCategory("Books"); err == nil {
			t.Fatal("expected error for mixed case, got nil")
		}
	})
}

func TestCategories_Count(t *testing.T) {
	if len(Categories()) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(Categories()))
	}
}
