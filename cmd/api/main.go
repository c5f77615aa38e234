package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shopkart/internal/config"
	"shopkart/internal/database"
	"shopkart/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)
	rdb := database.ConnectRedis(cfg.RedisURL)

	router := gin.Default()
	routes.RegisterRoutes(router, db, rdb)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
