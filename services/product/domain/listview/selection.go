package listview

import (
	"sort"

	"github.com/google/uuid"
)

// Selection is the immutable set of record identifiers marked for a bulk
// action. Selection persists across page changes; it may hold ids that are
// not on the visible page, but never ids absent from the last-fetched raw
// collection — Prune enforces that on every refresh.
//
// Every method returns a new Selection; the receiver is never mutated.
type Selection struct {
	ids map[uuid.UUID]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{ids: map[uuid.UUID]struct{}{}}
}

// Contains reports whether id is marked.
func (s Selection) Contains(id uuid.UUID) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of marked identifiers.
func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the marked identifiers in a deterministic order.
func (s Selection) IDs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// ToggleOne flips membership of id. It never implicitly sets or clears the
// all-selected state; AllSelected is always recomputed from set equality.
func (s Selection) ToggleOne(id uuid.UUID) Selection {
	next := s.clone()
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// AllSelected reports whether the selection equals exactly the given
// filtered identifier set. An empty filtered set is never "all selected".
func (s Selection) AllSelected(filtered []uuid.UUID) bool {
	if len(filtered) == 0 || len(s.ids) != len(filtered) {
		return false
	}
	for _, id := range filtered {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

// ToggleAll implements the select-all checkbox: if everything in filtered is
// already selected, the selection empties; otherwise it becomes exactly
// filtered. The filtered set spans ALL pages of the category+price-filtered
// collection, not just the visible page.
func (s Selection) ToggleAll(filtered []uuid.UUID) Selection {
	if s.AllSelected(filtered) {
		return NewSelection()
	}
	next := Selection{ids: make(map[uuid.UUID]struct{}, len(filtered))}
	for _, id := range filtered {
		next.ids[id] = struct{}{}
	}
	return next
}

// Clear empties the selection. Called after a successful bulk action.
func (s Selection) Clear() Selection {
	return NewSelection()
}

// Prune drops every marked id that is not in the valid set. Called whenever
// the raw collection is refreshed so stale identifiers never linger.
func (s Selection) Prune(valid []uuid.UUID) Selection {
	validSet := make(map[uuid.UUID]struct{}, len(valid))
	for _, id := range valid {
		validSet[id] = struct{}{}
	}
	next := Selection{ids: make(map[uuid.UUID]struct{}, len(s.ids))}
	for id := range s.ids {
		if _, ok := validSet[id]; ok {
			next.ids[id] = struct{}{}
		}
	}
	return next
}

func (s Selection) clone() Selection {
	next := Selection{ids: make(map[uuid.UUID]struct{}, len(s.ids))}
	for id := range s.ids {
		next.ids[id] = struct{}{}
	}
	return next
}
