package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HiteshiPatil10/tressora-backend/internal/cache"
	"github.com/HiteshiPatil10/tressora-backend/internal/config"
	dbpkg "github.com/HiteshiPatil10/tressora-backend/internal/db"
	"github.com/HiteshiPatil10/tressora-backend/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	store := cache.New(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
