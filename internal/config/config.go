package config

import (
	"os"
	"strings"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

type Config struct {
	Port           string
	Environment    string   // ENV: production, development, etc.
	StorageBackend string   // file, postgres or mongo
	DataFile       string   // local JSON document; also the fallback tier
	PostgresURI    string
	MongoURI       string
	RedisURI       string   // optional; enables the document cache when set
	FrontendURL    string
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s)
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))

	backend := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", BackendFile)))
	switch backend {
	case BackendFile, BackendPostgres, BackendMongo:
	default:
		backend = BackendFile
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		StorageBackend: backend,
		DataFile:       getEnv("DATA_FILE", "DataOutput/data.json"),
		PostgresURI:    getEnv("POSTGRES_URI", "postgres://localhost:5432/longjourney?sslmode=disable"),
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/longjourney")),
		RedisURI:       getEnv("REDIS_URI", ""),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins: allowedOrigins,
	}
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
