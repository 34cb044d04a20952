// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Every route sees the session when the cookie is valid; LoadSession never
	// rejects, it only attaches. RequireSession is layered where auth is mandatory.
	e.Use(r.authMiddleware.LoadSession)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session, r.authMiddleware.RequireSession)
	}

	// Public catalog routes, no authentication required
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/qrcode", r.productHandler.ShareQRCode)
		productGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		productGroup.POST("/:id/reviews", r.reviewHandler.CreateReview, r.authMiddleware.RequireSession)
	}

	// Seller routes that require authentication
	myGroup := e.Group("/my-products")
	myGroup.Use(r.authMiddleware.RequireSession)
	{
		myGroup.GET("", r.productHandler.ListMyProducts)
		myGroup.POST("", r.productHandler.CreateProduct)
		myGroup.GET("/:id", r.productHandler.GetMyProduct)
		myGroup.PUT("/:id", r.productHandler.UpdateProduct)
		myGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}
}
