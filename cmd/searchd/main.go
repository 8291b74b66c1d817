package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rawblock/riecoin-sextuplet-engine/internal/api"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/coordinator"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/primetable"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/store"
	"github.com/rawblock/riecoin-sextuplet-engine/internal/telemetry"
)

func main() {
	log.Println("Starting Riecoin sextuplet search engine...")

	log.Println("Building prime table (this takes a while the first time)...")
	table, err := primetable.Build()
	if err != nil {
		log.Fatalf("FATAL: failed to build prime table: %v", err)
	}

	var hitStore *store.HitStore
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		s, err := store.Connect(dbURL)
		if err != nil {
			log.Printf("Warning: failed to connect to PostgreSQL, continuing without hit persistence: %v", err)
		} else {
			hitStore = s
			defer hitStore.Close()
			if err := hitStore.InitSchema(); err != nil {
				log.Printf("Warning: schema init failed: %v", err)
			}
		}
	} else {
		log.Println("DATABASE_URL not set, running without hit persistence")
	}

	hub := telemetry.NewHub()
	go hub.Run()

	coord := coordinator.New(table)
	cb := newDemoCallbacks(hub, hitStore)
	poller := NewPoller(coord, cb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	limiter := api.NewRateLimiter(30, 10)
	srv := &api.Server{Hub: hub, Store: hitStore, StartedAt: time.Now()}

	gin.SetMode(getEnvOrDefault("GIN_MODE", gin.ReleaseMode))
	r := gin.New()
	r.Use(gin.Recovery())
	srv.Routes(r, limiter)
	r.POST("/restart", func(c *gin.Context) {
		poller.RequestRestart()
		c.Status(202)
	})

	port := getEnvOrDefault("PORT", "8080")
	log.Printf("Listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("FATAL: server exited: %v", err)
	}
}

func getEnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
