// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AttributeHandler *handler.AttributeHandler
	ProductHandler   *handler.ProductHandler
	CatalogHandler   *handler.CatalogHandler
	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	attributeHandler *handler.AttributeHandler
	productHandler   *handler.ProductHandler
	catalogHandler   *handler.CatalogHandler
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		attributeHandler: params.AttributeHandler,
		productHandler:   params.ProductHandler,
		catalogHandler:   params.CatalogHandler,
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront catalog
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:slug", r.catalogHandler.GetProduct)

	// Cart routes serve guests and authenticated shoppers alike
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:itemID", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:itemID", r.cartHandler.RemoveItem)
	}

	// Checkout and order lookup, also open to guests
	e.POST("/checkout", r.checkoutHandler.Checkout, r.authMiddleware.OptionalAuthenticate)
	e.GET("/orders/:number", r.checkoutHandler.GetOrder, r.authMiddleware.OptionalAuthenticate)

	// Order history requires a signed-in shopper
	e.GET("/orders", r.checkoutHandler.ListOrders, r.authMiddleware.Authenticate)

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/attributes", r.attributeHandler.CreateAttribute)
		adminGroup.GET("/attributes", r.attributeHandler.ListAttributes)
		adminGroup.GET("/attributes/:key", r.attributeHandler.GetAttribute)
		adminGroup.PUT("/attributes/:key", r.attributeHandler.UpdateAttribute)

		adminGroup.POST("/products", r.productHandler.UpsertProduct)
		adminGroup.PUT("/products/:id/discount", r.productHandler.SetProductDiscount)
		adminGroup.PUT("/settings/discount", r.productHandler.SetGlobalDiscount)

		adminGroup.POST("/orders/:id/cancel", r.checkoutHandler.CancelOrder)
		adminGroup.POST("/orders/:id/paid", r.checkoutHandler.MarkOrderPaid)
		adminGroup.POST("/orders/:id/fulfill", r.checkoutHandler.FulfillOrder)
	}
}
