package listview

import (
	"fmt"
	"testing"

	"github.com/ghuser/stockroom/services/product/domain/models"
)

func TestState_FilterChangesResetPage(t *testing.T) {
	st := NewState().SetPage(3)

	t.Run("category", func(t *testing.T) {
		next := st.SetCategory("books")
		if next.Params.Page != 1 {
			t.Fatalf("expected page reset to 1, got %d", next.Params.Page)
		}
	})

	t.Run("price band", func(t *testing.T) {
		next := st.SetPriceBand(PriceBandUnder100)
		if next.Params.Page != 1 {
			t.Fatalf("expected page reset to 1, got %d", next.Params.Page)
		}
	})

	t.Run("sort keeps page", func(t *testing.T) {
		next := st.SetSortKey(SortPriceDesc)
		if next.Params.Page != 3 {
			t.Fatalf("expected page preserved, got %d", next.Params.Page)
		}
	})
}

func TestState_SearchInputIsNotCommitted(t *testing.T) {
	st := NewState().SetPage(2).SetSearchInput("keyb")

	if st.Params.SearchTerm != "" {
		t.Fatalf("typing must not commit the term, got %q", st.Params.SearchTerm)
	}
	if st.Params.Page != 2 {
		t.Fatalf("typing must not reset the page, got %d", st.Params.Page)
	}

	st = st.CommitSearch()
	if st.Params.SearchTerm != "keyb" {
		t.Fatalf("expected committed term %q, got %q", "keyb", st.Params.SearchTerm)
	}
	if st.Params.Page != 1 {
		t.Fatalf("commit must reset to page 1, got %d", st.Params.Page)
	}
}

func TestState_SelectionSurvivesPageChanges(t *testing.T) {
	raw := make([]*models.Product, 8)
	for i := range raw {
		raw[i] = record(t, fmt.Sprintf("rec-%d", i), "other", float64(i))
	}

	st := NewState().ToggleOne(raw[0].ID).SetPage(2)
	if !st.Selection.Contains(raw[0].ID) {
		t.Fatal("selection lost on page change")
	}

	// The selected record sits on page 1 while page 2 is rendered.
	v := st.Render(raw)
	for _, rec := range v.Records {
		if rec.ID == raw[0].ID {
			t.Fatal("selected record unexpectedly on rendered page")
		}
	}
}

func TestState_ToggleAllSpansAllPages(t *testing.T) {
	raw := make([]*models.Product, 12)
	for i := range raw {
		raw[i] = record(t, fmt.Sprintf("rec-%02d", i), "other", float64(i))
	}

	st := NewState().SetPage(2).ToggleAll(raw)
	if st.Selection.Len() != 12 {
		t.Fatalf("expected all 12 records selected, got %d", st.Selection.Len())
	}
	if !st.AllSelected(raw) {
		t.Fatal("expected all-selected state")
	}
}

func TestState_ToggleAllHonorsFilter(t *testing.T) {
	raw := []*models.Product{
		record(t, "cheap", "other", 10),
		record(t, "pricey", "other", 150),
	}

	st := NewState().SetPriceBand(PriceBandUnder50).ToggleAll(raw)
	if st.Selection.Len() != 1 || !st.Selection.Contains(raw[0].ID) {
		t.Fatalf("expected only the in-band record selected, got %d", st.Selection.Len())
	}
	if st.Selection.Contains(raw[1].ID) {
		t.Fatal("out-of-band record selected")
	}
}

func TestState_RefreshPrunesDeletedIDs(t *testing.T) {
	raw := []*models.Product{
		record(t, "keep", "other", 1),
		record(t, "drop", "other", 2),
	}

	st := NewState().ToggleAll(raw)

	// The second record disappears from the store between fetches.
	st = st.Refresh(raw[:1])
	if st.Selection.Len() != 1 || !st.Selection.Contains(raw[0].ID) {
		t.Fatalf("expected only surviving record selected, got %d", st.Selection.Len())
	}
}

func TestState_BulkActionLifecycle(t *testing.T) {
	raw := []*models.Product{
		record(t, "a", "other", 1),
		record(t, "b", "other", 2),
	}

	st := NewState().ToggleAll(raw)

	// Failure: selection untouched, client retries with the same set.
	if st.Selection.Len() != 2 {
		t.Fatalf("expected selection preserved on failure, got %d", st.Selection.Len())
	}

	// Success: selection cleared, then the refreshed collection is empty.
	st = st.ClearSelection().Refresh(nil)
	if st.Selection.Len() != 0 {
		t.Fatalf("expected empty selection after success, got %d", st.Selection.Len())
	}
}
