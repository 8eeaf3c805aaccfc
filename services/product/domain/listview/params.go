// Package listview implements the product list-view state machine: the view
// pipeline that turns a raw search-scoped collection plus view parameters
// into the exact page to render, and the selection set that backs bulk
// actions. Everything here is pure — values in, new values out — so the
// HTTP layer and tests drive it the same way.
package listview

import (
	"fmt"

	"github.com/ghuser/stockroom/services/product/domain/models"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// DefaultPageSize is the fixed page length of the product list.
const DefaultPageSize = 5

// PriceBand selects records strictly below a price threshold.
type PriceBand string

// Price bands. Thresholds are exclusive upper bounds: a record priced
// exactly 50.00 is excluded from under-50 but included in under-100.
const (
	PriceBandAll      PriceBand = "all"
	PriceBandUnder50  PriceBand = "under-50"
	PriceBandUnder100 PriceBand = "under-100"
	PriceBandUnder200 PriceBand = "under-200"
)

// ParsePriceBand validates s against the fixed band set.
func ParsePriceBand(s string) (PriceBand, error) {
	switch PriceBand(s) {
	case PriceBandAll, PriceBandUnder50, PriceBandUnder100, PriceBandUnder200:
		return PriceBand(s), nil
	}
	return "", fmt.Errorf("unknown price band %q", s)
}

// Threshold returns the exclusive upper bound for the band, or ok=false for
// PriceBandAll.
func (b PriceBand) Threshold() (float64, bool) {
	switch b {
	case PriceBandUnder50:
		return 50, true
	case PriceBandUnder100:
		return 100, true
	case PriceBandUnder200:
		return 200, true
	default:
		return 0, false
	}
}

// SortKey selects the comparator applied after filtering.
type SortKey string

// Sort keys. SortNone leaves filter order untouched.
const (
	SortNone      SortKey = "none"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
)

// ParseSortKey validates s against the fixed sort key set.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortNone, SortPriceAsc, SortPriceDesc, SortTitleAsc, SortTitleDesc:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// ViewParams is the immutable tuple of view transforms. All transitions go
// through the With*/Commit reducers, which return a new value; the zero
// value is not valid — start from NewViewParams.
//
// SearchInput is the in-progress text; SearchTerm is the committed term that
// scopes the raw fetch. Only CommitSearch moves input to term.
type ViewParams struct {
	Category    string // a models.Category value or the CategoryAll sentinel
	PriceBand   PriceBand
	SortKey     SortKey
	SearchTerm  string
	SearchInput string
	Page        int // 1-based
	PageSize    int
}

// NewViewParams returns the initial view: everything unfiltered, page 1.
func NewViewParams() ViewParams {
	return ViewParams{
		Category:  CategoryAll,
		PriceBand: PriceBandAll,
		SortKey:   SortNone,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// ParseCategoryFilter validates s as either the CategoryAll sentinel or one
// of the enumerated record categories.
func ParseCategoryFilter(s string) (string, error) {
	if s == CategoryAll {
		return CategoryAll, nil
	}
	c, err := models.ParseCategory(s)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// WithCategory returns params with a new category filter, back on page 1.
func (p ViewParams) WithCategory(category string) ViewParams {
	p.Category = category
	p.Page = 1
	return p
}

// WithPriceBand returns params with a new price band, back on page 1.
func (p ViewParams) WithPriceBand(band PriceBand) ViewParams {
	p.PriceBand = band
	p.Page = 1
	return p
}

// WithSortKey returns params with a new sort key. Sorting reorders the whole
// filtered set, so the current page keeps its index.
func (p ViewParams) WithSortKey(key SortKey) ViewParams {
	p.SortKey = key
	return p
}

// WithSearchInput returns params with updated in-progress search text.
// The committed term — and therefore the fetched collection — is unchanged.
func (p ViewParams) WithSearchInput(input string) ViewParams {
	p.SearchInput = input
	return p
}

// CommitSearch promotes the in-progress input to the committed term and
// resets to page 1. The caller must re-fetch the raw collection afterwards.
func (p ViewParams) CommitSearch() ViewParams {
	p.SearchTerm = p.SearchInput
	p.Page = 1
	return p
}

// WithPage returns params on the given 1-based page. Values below 1 clamp
// to 1; Render clamps the upper bound against the filtered set.
func (p ViewParams) WithPage(page int) ViewParams {
	if page < 1 {
		page = 1
	}
	p.Page = page
	return p
}
