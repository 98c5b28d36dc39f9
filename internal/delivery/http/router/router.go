// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"organico/internal/delivery/http/middleware"
	"organico/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	LocationHandler *handler.LocationHandler
	FavoriteHandler *handler.FavoriteHandler
	CatalogHandler  *handler.CatalogHandler
	ProducerHandler *handler.ProducerHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	locationHandler *handler.LocationHandler
	favoriteHandler *handler.FavoriteHandler
	catalogHandler  *handler.CatalogHandler
	producerHandler *handler.ProducerHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		locationHandler: params.LocationHandler,
		favoriteHandler: params.FavoriteHandler,
		catalogHandler:  params.CatalogHandler,
		producerHandler: params.ProducerHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Read paths are public; mutating paths authenticate and leave ownership
// checks to the services.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
	}

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
		userGroup.PUT("/me", r.userHandler.UpdateMe)
	}

	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.List)
		locationGroup.GET("/map_data", r.locationHandler.MapData)
		locationGroup.GET("/my_locations", r.locationHandler.MyLocations, r.authMiddleware.Authenticate)
		locationGroup.GET("/:id", r.locationHandler.Get)
		locationGroup.GET("/:id/qr", r.locationHandler.ShareQR)
		locationGroup.POST("", r.locationHandler.Create, r.authMiddleware.Authenticate)
		locationGroup.PUT("/:id", r.locationHandler.Update, r.authMiddleware.Authenticate)
		locationGroup.PATCH("/:id", r.locationHandler.Update, r.authMiddleware.Authenticate)
		locationGroup.DELETE("/:id", r.locationHandler.Delete, r.authMiddleware.Authenticate)
		locationGroup.POST("/:id/add_image", r.locationHandler.AddImage, r.authMiddleware.Authenticate)
	}

	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.POST("/toggle", r.favoriteHandler.Toggle)
		favoriteGroup.GET("/check", r.favoriteHandler.Check)
		favoriteGroup.GET("", r.favoriteHandler.List)
	}

	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/categories", r.catalogHandler.ListCategories)

	producerGroup := e.Group("/producers")
	producerGroup.Use(r.authMiddleware.Authenticate)
	{
		producerGroup.GET("/my_profile", r.producerHandler.GetMyProfile)
		producerGroup.PUT("/my_profile", r.producerHandler.UpdateMyProfile)
	}
}
