package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	appsvcs "github.com/ghuser/stockroom/services/product/application/services"
)

// ImportProductsResponse aggregates a bulk import run. Error carries the
// first row failure only; later failures are counted but not reported.
type ImportProductsResponse struct {
	Succeeded int    `json:"succeeded" example:"3"`
	Failed    int    `json:"failed" example:"2"`
	Error     string `json:"error,omitempty" example:"invalid price \"abc\""`
} // @name ImportProductsResponse

// ImportProductsHandler handles POST /products/import requests.
type ImportProductsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewImportProductsHandler returns an ImportProductsHandler backed by the given services.
func NewImportProductsHandler(svc *appsvcs.Services, log logger.Logger) *ImportProductsHandler {
	return &ImportProductsHandler{svc: svc, log: log}
}

// Execute imports products from a CSV request body, best-effort: failing
// rows are counted and skipped, never aborting the rest. After a response
// the client must re-fetch its list — rows may have landed even when some
// failed.
//
//	@Summary		Import products
//	@Description	Imports products from CSV (header row: title, description, category, price, quantity, image); requires the admin role
//	@Tags			products
//	@Accept			plain
//	@Produce		json
//	@Success		200	{object}	ImportProductsResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		403	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/products/import [post]
func (h *ImportProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	result, err := h.svc.Importer.Import(r.Context(), actor, r.Body)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	h.log.InfoContext(r.Context(), "product import finished",
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)

	httpx.JSON(w, http.StatusOK, ImportProductsResponse{
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Error:     result.FirstError,
	})
}
