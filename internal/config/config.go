package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/bos-com/Recipe-management-System/internal/infrastructure"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
	"github.com/bos-com/Recipe-management-System/internal/store"
)

const (
	RecipeSourceSample = "sample"
	RecipeSourceSQL    = "sql"
	RecipeSourceMongo  = "mongo"
)

type Redis struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type Config struct {
	HTTPAddr string
	LogLevel slog.Level

	SlotBackend string
	SlotDir     string
	Redis       Redis

	DatabaseURL  string
	RecipeSource string
	MongoURI     string
	MongoDB      string

	NATSURL string

	JWTSecret   string
	JWTTTL      time.Duration
	AdminEmails []string

	CollectionScope store.Scope

	RateLimitRPS     float64
	RateLimitBurst   int
	ReviewRateWindow time.Duration
	ReviewRateMax    int
	SeedReviews      bool
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	scope, err := store.ParseScope(infrastructure.GetEnvAsString("COLLECTION_SCOPE", string(store.ScopeDevice)))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		HTTPAddr:    infrastructure.GetEnvAsString("HTTP_ADDR", ":8080"),
		LogLevel:    parseLevel(os.Getenv("LOG_LEVEL")),
		SlotBackend: strings.ToLower(infrastructure.GetEnvAsString("SLOT_BACKEND", slot.BackendFile)),
		SlotDir:     infrastructure.GetEnvAsString("SLOT_DIR", "data/slots"),
		Redis: Redis{
			URL:      os.Getenv("REDIS_URL"),
			Host:     infrastructure.GetEnvAsString("REDIS_HOST", "localhost"),
			Port:     infrastructure.GetEnvAsString("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       infrastructure.GetEnvAsInt("REDIS_DB", 0),
		},
		DatabaseURL:      infrastructure.GetEnvAsString("DATABASE_URL", "file:recipes.db"),
		RecipeSource:     strings.ToLower(infrastructure.GetEnvAsString("RECIPE_SOURCE", RecipeSourceSample)),
		MongoURI:         infrastructure.GetEnvAsString("MONGODB_URI", "mongodb://localhost:27017/recipe-management"),
		MongoDB:          infrastructure.GetEnvAsString("MONGODB_DATABASE", "recipe-management"),
		NATSURL:          os.Getenv("NATS_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTTTL:           infrastructure.GetEnvAsDuration("JWT_TTL", 24*time.Hour),
		AdminEmails:      infrastructure.GetEnvAsList("ADMIN_EMAILS"),
		CollectionScope:  scope,
		RateLimitRPS:     infrastructure.GetEnvAsFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst:   infrastructure.GetEnvAsInt("RATE_LIMIT_BURST", 100),
		ReviewRateWindow: infrastructure.GetEnvAsDuration("REVIEW_RATE_WINDOW", time.Minute),
		ReviewRateMax:    infrastructure.GetEnvAsInt("REVIEW_RATE_MAX", 5),
		SeedReviews:      infrastructure.GetEnvAsBool("SEED_REVIEWS", true),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.SlotBackend {
	case slot.BackendMemory, slot.BackendFile, slot.BackendRedis, slot.BackendSQL:
	default:
		return fmt.Errorf("config: unknown SLOT_BACKEND %q", c.SlotBackend)
	}
	switch c.RecipeSource {
	case RecipeSourceSample, RecipeSourceSQL, RecipeSourceMongo:
	default:
		return fmt.Errorf("config: unknown RECIPE_SOURCE %q", c.RecipeSource)
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must be set")
	}
	if c.ReviewRateWindow <= 0 {
		return fmt.Errorf("config: REVIEW_RATE_WINDOW must be positive, got %s", c.ReviewRateWindow)
	}
	if c.ReviewRateMax <= 0 {
		return fmt.Errorf("config: REVIEW_RATE_MAX must be positive, got %d", c.ReviewRateMax)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_RPS must be positive, got %g", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
