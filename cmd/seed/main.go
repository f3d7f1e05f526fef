package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/pizzaria-ai/chat-backend/internal/config"
	"github.com/pizzaria-ai/chat-backend/internal/menu"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted, err := menu.Seed(ctx, db)
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}

	log.Printf("seed done: %d new items, %d total in catalog", inserted, len(menu.SeedItems))
}
