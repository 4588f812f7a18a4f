package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/freshbulk/freshbulk/internal/config"
	"github.com/freshbulk/freshbulk/internal/server/http/handlers"
	"github.com/freshbulk/freshbulk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	api.GET("/products", productHandler.List)
	api.POST("/products", productHandler.Create)
	api.PUT("/products/:id", productHandler.Update)
	api.DELETE("/products/:id", productHandler.Delete)

	api.GET("/orders", orderHandler.List)
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders/:id", orderHandler.Get)
	api.PUT("/orders/:id", orderHandler.UpdateStatus)

	return engine
}
