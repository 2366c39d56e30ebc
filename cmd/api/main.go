package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/localskill/marketplace-api/internal/cache"
	"github.com/localskill/marketplace-api/internal/config"
	dbpkg "github.com/localskill/marketplace-api/internal/db"
	"github.com/localskill/marketplace-api/internal/middleware"
	"github.com/localskill/marketplace-api/internal/routes"
	"github.com/localskill/marketplace-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	feed, err := cache.New(cfg)
	if err != nil {
		// the feed cache is optional; a nil cache is a permanent miss
		log.Printf("redis unavailable, serving the feed without cache: %v", err)
	}

	uploader := storage.NewS3Uploader(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, feed, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
