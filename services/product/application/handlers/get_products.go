package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	appsvcs "github.com/ghuser/stockroom/services/product/application/services"
	"github.com/ghuser/stockroom/services/product/domain/listview"
)

// ListProductsResponse is the rendered page of the product list.
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Page       int               `json:"page" example:"1"`
	TotalPages int               `json:"total_pages" example:"3"`
	Total      int               `json:"total" example:"14"`
} // @name ListProductsResponse

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services, log logger.Logger) *GetProductsHandler {
	return &GetProductsHandler{svc: svc, log: log}
}

// Execute renders one page of the product list. The search term scopes the
// raw fetch; category, price band, sort, and page are applied in-process by
// the list-view pipeline. A failed fetch degrades to an empty list rather
// than an error response, so the view survives transient store failures.
//
//	@Summary		List products
//	@Description	Returns one page of the filtered, sorted, search-scoped product list
//	@Tags			products
//	@Produce		json
//	@Param			search		query		string	false	"Committed search term"
//	@Param			category	query		string	false	"Category filter or 'all'"	Enums(all, electronics, books, clothing, food, other)
//	@Param			price		query		string	false	"Price band"				Enums(all, under-50, under-100, under-200)
//	@Param			sort		query		string	false	"Sort key"					Enums(none, price-asc, price-desc, title-asc, title-desc)
//	@Param			page		query		int		false	"1-based page index"
//	@Success		200			{object}	ListProductsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/products [get]
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	params, err := viewParamsFromQuery(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	raw, err := h.svc.Product.Search(r.Context(), params.SearchTerm)
	if err != nil {
		// Fail soft: render an empty list, keep the failure in the logs.
		h.log.ErrorContext(r.Context(), "product fetch failed", "error", err)
		raw = nil
	}

	view := listview.Render(raw, params)

	products := make([]ProductResponse, len(view.Records))
	for i, rec := range view.Records {
		products[i] = toProductResponse(rec)
	}

	httpx.JSON(w, http.StatusOK, ListProductsResponse{
		Products:   products,
		Page:       view.Page,
		TotalPages: view.TotalPages,
		Total:      view.Total,
	})
}

// viewParamsFromQuery builds ViewParams from the request query string.
// Absent parameters keep their defaults; present ones must be valid.
func viewParamsFromQuery(r *http.Request) (listview.ViewParams, error) {
	params := listview.NewViewParams()
	q := r.URL.Query()

	if s := q.Get("category"); s != "" {
		category, err := listview.ParseCategoryFilter(s)
		if err != nil {
			return listview.ViewParams{}, err
		}
		params = params.WithCategory(category)
	}
	if s := q.Get("price"); s != "" {
		band, err := listview.ParsePriceBand(s)
		if err != nil {
			return listview.ViewParams{}, err
		}
		params = params.WithPriceBand(band)
	}
	if s := q.Get("sort"); s != "" {
		key, err := listview.ParseSortKey(s)
		if err != nil {
			return listview.ViewParams{}, err
		}
		params = params.WithSortKey(key)
	}
	if s := q.Get("search"); s != "" {
		params = params.WithSearchInput(s).CommitSearch()
	}
	if s := q.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			return listview.ViewParams{}, fmt.Errorf("page must be a positive integer, got %q", s)
		}
		params = params.WithPage(page)
	}
	return params, nil
}
