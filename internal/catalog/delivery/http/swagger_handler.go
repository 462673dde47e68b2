package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// BrowseCatalog godoc
// @Summary Browse the catalog
// @Description Filter, search and sort the product catalog
// @Tags Catalog
// @Produce json
// @Param search query string false "Free-text search over name, description and tags"
// @Param category query string false "Exact category filter"
// @Param brand query string false "Exact brand filter"
// @Param size query string false "Exact size filter"
// @Param color query string false "Exact color filter"
// @Param sort query string false "Sort mode: newest, priceLow, priceHigh, popular" default(newest)
// @Success 200 {object} object{success=bool,data=object{products=array,shown=int,total=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/catalog [get]
func (h *CatalogHandler) BrowseCatalogDoc() {}

// GetProduct godoc
// @Summary Get a product
// @Description Get a single product by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/catalog/{id} [get]
func (h *CatalogHandler) GetProductDoc() {}

// GetStats godoc
// @Summary Catalog statistics
// @Description Counts, price range and filter labels for the storefront sidebar
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/catalog/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}

// CreateProduct godoc
// @Summary Create a product
// @Description Add a new product to the catalog (admin only)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,tags=array,category=string,brand=string,size=string,color=string,price=int,stock=int,image_url=string} true "Product data"
// @Success 201 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/catalog [post]
func (h *CatalogHandler) CreateProductDoc() {}

// UpdateStock godoc
// @Summary Update product stock
// @Description Set the stock level for a product (admin only)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{stock=int} true "New stock level"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/catalog/{id}/stock [patch]
func (h *CatalogHandler) UpdateStockDoc() {}
