//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/raritone/storefront/internal/cart/cache"
	"github.com/raritone/storefront/internal/cart/delivery/http"
	"github.com/raritone/storefront/internal/cart/domain"
	"github.com/raritone/storefront/internal/cart/repository"
	"github.com/raritone/storefront/internal/cart/usecase/command"
	"github.com/raritone/storefront/internal/cart/usecase/query"
)

// ProvideCartRepository provides the cart repository
func ProvideCartRepository(db *gorm.DB) domain.CartRepository {
	return repository.NewGormCartRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

var CommandSet = wire.NewSet(
	command.NewAddItemHandler,
	command.NewUpdateQuantityHandler,
	command.NewRemoveItemHandler,
	command.NewClearCartHandler,
	command.NewCheckoutHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetCartHandler,
	query.NewPriceCartHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	cartCache cache.CartCache,
	products command.ProductSource,
	publisher command.OrderPublisher,
	pricing domain.PricingConfig,
) (*http.CartHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewCartHandler,
	)
	return nil, nil
}
