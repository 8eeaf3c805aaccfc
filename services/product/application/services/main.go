package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/services/product/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product     *ProductService
	Importer    *Importer
	BulkDeleter *BulkDeleter
}

// New wires all product application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)
	productCache := cache.NewProductCache(a.Redis)
	svc := NewProductService(repo, productCache)
	return &Services{
		Product:     svc,
		Importer:    NewImporter(svc),
		BulkDeleter: NewBulkDeleter(svc),
	}
}
