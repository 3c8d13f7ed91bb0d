package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/jodavila/long-journey/internal/config"
	"github.com/jodavila/long-journey/internal/handlers"
	"github.com/jodavila/long-journey/internal/journal"
	"github.com/jodavila/long-journey/internal/middleware"
	"github.com/jodavila/long-journey/internal/routes"
	"github.com/jodavila/long-journey/internal/services"
	"github.com/jodavila/long-journey/internal/storage"
	"github.com/jodavila/long-journey/internal/storage/file"
	"github.com/jodavila/long-journey/internal/storage/mongo"
	"github.com/jodavila/long-journey/internal/storage/postgres"
	"github.com/jodavila/long-journey/internal/storage/rediscache"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	docStore, err := buildDocumentStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}
	defer docStore.Close()

	// Display sink: websocket clients get a view snapshot after every mutation
	hub := services.NewViewHub()

	store, err := journal.NewStore(context.Background(), docStore, hub)
	if err != nil {
		log.Fatal("Failed to load journal document:", err)
	}
	log.Println("✅ Journal document loaded")

	handlers.Init(store, hub)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.IsProduction() {
		for _, m := range middleware.ProductionSecurity() {
			r.Use(m)
		}
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  GET  /api/data")
	log.Println("  POST /api/data")
	log.Println("  GET  /api/export")
	log.Println("  PUT  /api/activities")
	log.Println("  POST /api/activities/chapters")
	log.Println("  DELETE /api/activities/chapters")
	log.Println("  POST /api/sessions")
	log.Println("  POST /api/prayers")
	log.Println("  PUT  /api/prayers/answered")
	log.Println("  DELETE /api/prayers")
	log.Println("  GET  /api/summary")
	log.Println("  GET  /ws/journal")

	log.Printf("🚀 Long Journey backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// buildDocumentStore assembles the persistence stack: the configured primary
// backend, the local JSON file as the fallback tier behind the database
// backends, and an optional Redis cache in front of the primary. The journal
// store only ever sees one DocumentStore.
func buildDocumentStore(cfg *config.Config) (storage.DocumentStore, error) {
	localStore, err := file.New(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	var primary storage.DocumentStore
	var secondary storage.DocumentStore

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		log.Printf("Connecting to PostgreSQL...")
		primary, err = postgres.Connect(cfg.PostgresURI)
		if err != nil {
			return nil, err
		}
		secondary = localStore
	case config.BackendMongo:
		log.Printf("Connecting to MongoDB...")
		primary, err = mongo.Connect(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		secondary = localStore
	default:
		log.Printf("Using local data file: %s", cfg.DataFile)
		primary = localStore
	}

	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		cached, err := rediscache.Wrap(primary, cfg.RedisURI)
		if err != nil {
			log.Printf("⚠️  WARNING: Redis unavailable, document cache disabled: %v", err)
		} else {
			primary = cached
		}
	}

	return storage.NewTiered(primary, secondary), nil
}
