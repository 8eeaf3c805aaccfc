package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/product/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/product/application/services"
)

// ProductRoutes registers product endpoints on the provided chi router.
func ProductRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.NewGetProductsHandler(svcs, a.Logger).Execute)
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Post("/bulk-delete", handlers.NewBulkDeleteHandler(svcs, a.Logger).Execute)
			r.Post("/import", handlers.NewImportProductsHandler(svcs, a.Logger).Execute)
			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", handlers.NewGetProductHandler(svcs).Execute)
				r.Put("/", handlers.NewPutProductHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteProductHandler(svcs).Execute)
			})
		})
	})
}
