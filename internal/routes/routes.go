package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"shopkart/internal/handlers"
	"shopkart/internal/metrics"
	"shopkart/internal/repository"
	"shopkart/internal/session"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, rdb *redis.Client) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(metrics.Middleware())

	productRepo := repository.NewProductRepository(db.Collection("products"))
	orderRepo := repository.NewOrderRepository(db.Collection("orders"))
	sessionStore := session.NewStore(rdb)

	productHandler := handlers.NewProductHandler(productRepo)
	sessionHandler := handlers.NewSessionHandler(sessionStore, handlers.NewSnapshotSource(productRepo))
	orderHandler := handlers.NewOrderHandler(orderRepo, productRepo)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/products", productHandler.ListProducts)
		v1.GET("/products/featured", productHandler.FeaturedProducts)
		v1.POST("/products", productHandler.CreateProduct)
		v1.GET("/products/:id", productHandler.GetProduct)
		v1.PATCH("/products/:id", productHandler.UpdateProduct)
		v1.DELETE("/products/:id", productHandler.DeleteProduct)

		v1.POST("/sessions", sessionHandler.CreateSession)
		v1.GET("/sessions/:id", sessionHandler.GetSession)
		v1.GET("/sessions/:id/products", sessionHandler.SessionProducts)
		v1.POST("/sessions/:id/toggle", sessionHandler.ToggleFilter)
		v1.PUT("/sessions/:id/price", sessionHandler.SetPriceRange)
		v1.PUT("/sessions/:id/rating", sessionHandler.SetMinRating)
		v1.PUT("/sessions/:id/organic", sessionHandler.SetOrganic)
		v1.PUT("/sessions/:id/discounted", sessionHandler.SetDiscounted)
		v1.POST("/sessions/:id/tags/remove", sessionHandler.RemoveTag)
		v1.DELETE("/sessions/:id/filters", sessionHandler.ClearFilters)

		v1.POST("/orders", orderHandler.CreateOrder)
		v1.GET("/orders", orderHandler.GetOrders)
		v1.GET("/orders/:id", orderHandler.GetOrder)
	}
}
