package handlers

import (
	"net/http"

	"github.com/ghuser/stockroom/pkg/auth"
	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/product/application/services"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255" example:"Wireless Mouse"`
	Description string  `json:"description" validate:"max=4096" example:"2.4 GHz wireless mouse"`
	Category    string  `json:"category" validate:"required" example:"electronics"`
	Price       float64 `json:"price" validate:"gte=0" example:"24.99"`
	Quantity    int     `json:"quantity" validate:"gte=0" example:"12"`
	Image       string  `json:"image" example:"https://example.com/mouse.jpg"`
} // @name CreateProductRequest

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product owned by the acting user.
//
//	@Summary		Create product
//	@Description	Creates a new product record; requires the admin role
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Create(r.Context(), actor, appsvcs.ProductFields{
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

	httpx.JSON(w, http.StatusCreated, toProductResponse(product))
}
