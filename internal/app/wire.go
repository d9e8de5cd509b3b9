//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/velocita/storefront/internal/cart"
	carthttp "github.com/velocita/storefront/internal/cart/delivery/http"
	cartcommand "github.com/velocita/storefront/internal/cart/usecase/command"
	cartquery "github.com/velocita/storefront/internal/cart/usecase/query"
	cataloghttp "github.com/velocita/storefront/internal/catalog/delivery/http"
	catalogdomain "github.com/velocita/storefront/internal/catalog/domain"
	catalogquery "github.com/velocita/storefront/internal/catalog/usecase/query"
)

// CatalogSet provides the catalog query handlers
var CatalogSet = wire.NewSet(
	catalogquery.NewListProductsHandler,
	catalogquery.NewGetProductHandler,
	catalogquery.NewGetCatalogMetaHandler,
)

// CartSet provides the cart command and query handlers
var CartSet = wire.NewSet(
	cartcommand.NewAddItemHandler,
	cartcommand.NewRemoveItemHandler,
	cartcommand.NewUpdateQuantityHandler,
	cartcommand.NewClearCartHandler,
	cartquery.NewGetCartHandler,
)

// InitializeCatalogHandler initializes the catalog HTTP handler with all dependencies
func InitializeCatalogHandler(repo catalogdomain.CatalogRepository) *cataloghttp.CatalogHandler {
	wire.Build(
		CatalogSet,
		cataloghttp.NewCatalogHandler,
	)
	return nil
}

// InitializeCartHandler initializes the cart HTTP handler with all dependencies
func InitializeCartHandler(provider *cart.Provider, repo catalogdomain.CatalogRepository) *carthttp.CartHandler {
	wire.Build(
		CartSet,
		carthttp.NewCartHandler,
	)
	return nil
}
