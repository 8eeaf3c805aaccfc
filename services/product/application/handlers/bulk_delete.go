package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/product/application/services"
	"github.com/ghuser/stockroom/services/product/domain/listview"
)

// BulkDeleteRequest is the request body for POST /products/bulk-delete.
//
// Two modes: explicit IDs, or select_all with the current filter tuple —
// the latter resolves to every record surviving the category+price filter
// across all pages, matching the select-all checkbox semantics.
type BulkDeleteRequest struct {
	IDs       []string `json:"ids" validate:"dive,uuid4" example:"123e4567-e89b-12d3-a456-426614174000"`
	SelectAll bool     `json:"select_all" example:"false"`
	Search    string   `json:"search" example:""`
	Category  string   `json:"category" example:"all"`
	PriceBand string   `json:"price_band" example:"all"`
} // @name BulkDeleteRequest

// BulkDeleteResponse reports how many records were deleted.
type BulkDeleteResponse struct {
	Deleted int `json:"deleted" example:"3"`
} // @name BulkDeleteResponse

// BulkDeleteHandler handles POST /products/bulk-delete requests.
type BulkDeleteHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewBulkDeleteHandler returns a BulkDeleteHandler backed by the given services.
func NewBulkDeleteHandler(svc *appsvcs.Services, log logger.Logger) *BulkDeleteHandler {
	return &BulkDeleteHandler{svc: svc, log: log}
}

// Execute deletes the requested set of products. The operation is
// fail-together: if any constituent delete fails, the whole request is
// reported as failed and the client keeps its selection for retry.
//
//	@Summary		Bulk delete products
//	@Description	Concurrently deletes a set of products; requires the admin role
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BulkDeleteRequest	true	"Identifiers or select-all filter"
//	@Success		200		{object}	BulkDeleteResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products/bulk-delete [post]
func (h *BulkDeleteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[BulkDeleteRequest](w, r)
	if !ok {
		return
	}

	var ids []uuid.UUID
	if req.SelectAll {
		ids, err = h.resolveSelectAll(r, req)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		ids = make([]uuid.UUID, 0, len(req.IDs))
		for _, s := range req.IDs {
			id, err := uuid.Parse(s)
			if err != nil {
				httpx.JSONError(w, http.StatusBadRequest, "invalid product id "+s)
				return
			}
			ids = append(ids, id)
		}
	}

	if err := h.svc.BulkDeleter.Delete(r.Context(), actor, ids); err != nil {
		h.log.ErrorContext(r.Context(), "bulk delete failed", "count", len(ids), "error", err)
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BulkDeleteResponse{Deleted: len(ids)})
}

// resolveSelectAll turns the filter tuple into the full filtered id set,
// using the same pipeline the list endpoint renders with.
func (h *BulkDeleteHandler) resolveSelectAll(r *http.Request, req *BulkDeleteRequest) ([]uuid.UUID, error) {
	params := listview.NewViewParams()
	if req.Category != "" {
		category, err := listview.ParseCategoryFilter(req.Category)
		if err != nil {
			return nil, err
		}
		params = params.WithCategory(category)
	}
	if req.PriceBand != "" {
		band, err := listview.ParsePriceBand(req.PriceBand)
		if err != nil {
			return nil, err
		}
		params = params.WithPriceBand(band)
	}

	raw, err := h.svc.Product.Search(r.Context(), req.Search)
	if err != nil {
		return nil, err
	}
	return listview.FilteredIDs(raw, params), nil
}
