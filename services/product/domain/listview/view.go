package listview

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/product/domain/models"
)

// View is the rendered slice of the list plus the pagination facts the
// caller needs. Page is the clamped page index actually rendered, which may
// differ from the requested one after the collection shrinks.
type View struct {
	Records    []*models.Product
	Page       int
	TotalPages int
	Total      int // records surviving category+price filtering, across all pages
}

// Render computes the page to display from the raw search-scoped collection
// and the current view parameters. Steps, in order: category filter, price
// filter, stable sort, page clamp, slice. Render never mutates raw and is
// idempotent: same inputs, same output.
//
// The committed search term is NOT applied here — raw must already be the
// search-scoped result from the record store.
func Render(raw []*models.Product, p ViewParams) View {
	filtered := Filter(raw, p)
	sorted := sortRecords(filtered, p.SortKey)

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(sorted) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1 // empty collection still renders page 1 of 1
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}

	return View{
		Records:    sorted[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(sorted),
	}
}

// Filter applies the category and price-band transforms (steps 1–2 of the
// pipeline) and returns the surviving records in raw order. Select-all and
// Render both build on this so "all" always means the same set.
func Filter(raw []*models.Product, p ViewParams) []*models.Product {
	out := make([]*models.Product, 0, len(raw))
	threshold, bounded := p.PriceBand.Threshold()
	for _, rec := range raw {
		if p.Category != CategoryAll && rec.Category.String() != p.Category {
			continue
		}
		if bounded && rec.Price >= threshold {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// FilteredIDs returns the identifiers of every record surviving the
// category+price filter, across all pages. This is the select-all universe.
func FilteredIDs(raw []*models.Product, p ViewParams) []uuid.UUID {
	filtered := Filter(raw, p)
	ids := make([]uuid.UUID, len(filtered))
	for i, rec := range filtered {
		ids[i] = rec.ID
	}
	return ids
}

// sortRecords returns a sorted copy of records. The sort is stable: records
// with equal keys keep their filter-order relative position. SortNone
// returns the input order untouched.
func sortRecords(records []*models.Product, key SortKey) []*models.Product {
	if key == SortNone {
		return records
	}

	sorted := make([]*models.Product, len(records))
	copy(sorted, records)

	var less func(a, b *models.Product) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b *models.Product) bool { return a.Price > b.Price }
	case SortTitleAsc:
		less = func(a, b *models.Product) bool { return strings.Compare(a.Title.String(), b.Title.String()) < 0 }
	case SortTitleDesc:
		less = func(a, b *models.Product) bool { return strings.Compare(a.Title.String(), b.Title.String()) > 0 }
	default:
		return records
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
