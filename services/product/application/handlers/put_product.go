package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/product/application/services"
)

// UpdateProductRequest is the request body for PUT /products/{productID}.
// Image is optional; an empty value keeps the stored payload.
type UpdateProductRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255" example:"Wireless Mouse"`
	Description string  `json:"description" validate:"max=4096" example:"2.4 GHz wireless mouse"`
	Category    string  `json:"category" validate:"required" example:"electronics"`
	Price       float64 `json:"price" validate:"gte=0" example:"19.99"`
	Quantity    int     `json:"quantity" validate:"gte=0" example:"8"`
	Image       string  `json:"image" example:"https://example.com/mouse.jpg"`
} // @name UpdateProductRequest

// PutProductHandler handles PUT /products/{productID} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
}

// NewPutProductHandler returns a PutProductHandler backed by the given services.
func NewPutProductHandler(svc *appsvcs.Services) *PutProductHandler {
	return &PutProductHandler{svc: svc}
}

// Execute updates an existing product.
//
//	@Summary		Update product
//	@Description	Updates a product record; requires the admin role
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		string					true	"Product ID"
//	@Param			request		body		UpdateProductRequest	true	"Product update request"
//	@Success		200			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Failure		403			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Router			/products/{productID} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Update(r.Context(), actor, id, appsvcs.ProductFields{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(product))
}
