//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/raritone/storefront/internal/catalog/delivery/http"
	"github.com/raritone/storefront/internal/catalog/domain"
	"github.com/raritone/storefront/internal/catalog/repository"
	"github.com/raritone/storefront/internal/catalog/usecase/command"
	"github.com/raritone/storefront/internal/catalog/usecase/query"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewUpdateStockHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewBrowseCatalogHandler,
	query.NewGetStatsHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}
