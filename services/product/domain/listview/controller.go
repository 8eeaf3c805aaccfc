package listview

import (
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/product/domain/models"
)

// State is the full list-view controller state: view parameters plus the
// current selection. Like its parts it is an immutable value — every
// transition returns a new State — which keeps the controller trivially
// testable and replayable.
type State struct {
	Params    ViewParams
	Selection Selection
}

// NewState returns the initial controller state.
func NewState() State {
	return State{Params: NewViewParams(), Selection: NewSelection()}
}

// SetCategory applies a category filter.
func (st State) SetCategory(category string) State {
	st.Params = st.Params.WithCategory(category)
	return st
}

// SetPriceBand applies a price-band filter.
func (st State) SetPriceBand(band PriceBand) State {
	st.Params = st.Params.WithPriceBand(band)
	return st
}

// SetSortKey applies a sort order.
func (st State) SetSortKey(key SortKey) State {
	st.Params = st.Params.WithSortKey(key)
	return st
}

// SetPage moves to the given page.
func (st State) SetPage(page int) State {
	st.Params = st.Params.WithPage(page)
	return st
}

// SetSearchInput updates the in-progress search text without committing it.
func (st State) SetSearchInput(input string) State {
	st.Params = st.Params.WithSearchInput(input)
	return st
}

// CommitSearch promotes the search input to the committed term. The caller
// must re-fetch the raw collection and then call Refresh.
func (st State) CommitSearch() State {
	st.Params = st.Params.CommitSearch()
	return st
}

// ToggleOne flips selection membership for one record.
func (st State) ToggleOne(id uuid.UUID) State {
	st.Selection = st.Selection.ToggleOne(id)
	return st
}

// ToggleAll selects or deselects the entire category+price-filtered set
// across all pages of raw.
func (st State) ToggleAll(raw []*models.Product) State {
	st.Selection = st.Selection.ToggleAll(FilteredIDs(raw, st.Params))
	return st
}

// ClearSelection empties the selection after a successful bulk action.
func (st State) ClearSelection() State {
	st.Selection = st.Selection.Clear()
	return st
}

// Refresh reconciles the state with a freshly fetched raw collection:
// selection ids that no longer exist are pruned. Page clamping happens at
// render time, so no page adjustment is needed here.
func (st State) Refresh(raw []*models.Product) State {
	valid := make([]uuid.UUID, len(raw))
	for i, rec := range raw {
		valid[i] = rec.ID
	}
	st.Selection = st.Selection.Prune(valid)
	return st
}

// AllSelected reports whether the selection covers the whole filtered set.
func (st State) AllSelected(raw []*models.Product) bool {
	return st.Selection.AllSelected(FilteredIDs(raw, st.Params))
}

// Render produces the page to display for the current parameters.
func (st State) Render(raw []*models.Product) View {
	return Render(raw, st.Params)
}
