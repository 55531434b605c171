package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/agenasports/pitch-scheduler/internal/config"
	dbpkg "github.com/agenasports/pitch-scheduler/internal/db"
	infraRepo "github.com/agenasports/pitch-scheduler/internal/infra/repository"
	"github.com/agenasports/pitch-scheduler/internal/middleware"
	"github.com/agenasports/pitch-scheduler/internal/realtime"
	"github.com/agenasports/pitch-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	hub := realtime.NewHub(infraRepo.NewReservationGormRepository(db), rdb)
	go hub.Run(context.Background())

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, hub, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
