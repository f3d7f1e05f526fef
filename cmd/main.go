package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/pizzaria-ai/chat-backend/internal/ai"
	"github.com/pizzaria-ai/chat-backend/internal/chat"
	"github.com/pizzaria-ai/chat-backend/internal/config"
	"github.com/pizzaria-ai/chat-backend/internal/menu"
	"github.com/pizzaria-ai/chat-backend/internal/orders"
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

	port := strconv.Itoa(cfg.Server.Port)
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}

	// --- DB ---
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping error: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Order handoff (optional) ---
	var publisher orders.Publisher = orders.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		publisher, err = orders.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("rabbitmq error: %v", err)
		}
		log.Printf("[main] order events enabled on exchange %q", cfg.RabbitMQ.Exchange)
	}

	// --- Module wiring ---
	menuRepo := menu.NewRepo(db)
	menuHandler := menu.NewHandler(menuRepo)

	aiClient := ai.NewOpenAIClient()
	store := chat.NewMemoryStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	chatService := chat.NewService(menuRepo, aiClient, store, publisher)
	chatHandler := chat.NewHandler(chatService)

	chat.RegisterRoutes(r, chatHandler)
	menu.RegisterRoutes(r, menuHandler)

	// --- info + health ---
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "🍕 Pizzaria AI Backend",
			"version": "1.0.0",
			"status":  "Online",
			"endpoints": map[string]string{
				"messages": "/api/messages",
				"menu":     "/api/menu",
				"health":   "/health",
			},
		})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
