package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/liurongbaobao/myWisdomRestaurant/internal/ai"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/config"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/db"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/recommendation"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/router"
	"github.com/liurongbaobao/myWisdomRestaurant/internal/store"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// ───────────────────────── DB ─────────────────────────
	conn, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer conn.Close()
	log.Printf("sqlite database ready at %s", cfg.Database.Path)

	// ───────────────────────── WIRING ─────────────────────────
	sessionStore := store.New(conn)
	aiService := ai.NewService(ai.NewClient(cfg.AI))

	recService := recommendation.NewService(aiService, sessionStore)
	recHandler := recommendation.NewHandler(recService)

	r := router.New(cfg, recHandler)

	// ───────────────────────── START ─────────────────────────
	log.Printf("API running at %s", cfg.Server.ListenAddr)
	if err := r.Run(cfg.Server.ListenAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
