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

// GetCart godoc
// @Summary Get the current cart
// @Description Get the authenticated user's cart with its line items
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// PriceCart godoc
// @Summary Price the current cart
// @Description Subtotal, shipping, tax and total for the authenticated user's cart, in minor currency units
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{subtotal=int,shipping=int,tax=int,total=int,amount_to_free_shipping=int}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart/pricing [get]
func (h *CartHandler) PriceCartDoc() {}

// AddItem godoc
// @Summary Add an item to the cart
// @Description Add a product in a given size; quantities merge when the (product, size) pair is already present
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,size=string,quantity=int} true "Item to add"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// UpdateQuantity godoc
// @Summary Set a line item quantity
// @Description Set the quantity for a (product, size) line; zero or less removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,size=string,quantity=int} true "New quantity"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/items [patch]
func (h *CartHandler) UpdateQuantityDoc() {}

// Checkout godoc
// @Summary Checkout the cart
// @Description Price the cart, publish the order event and clear the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{order_id=string,pricing=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/checkout [post]
func (h *CartHandler) CheckoutDoc() {}
