package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/bos-com/Recipe-management-System/internal/application/services"
	"github.com/bos-com/Recipe-management-System/internal/config"
	"github.com/bos-com/Recipe-management-System/internal/delivery/handler"
	"github.com/bos-com/Recipe-management-System/internal/domain/access"
	"github.com/bos-com/Recipe-management-System/internal/domain/repositories"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/db/mongo"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/db/postgres"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/sample"
	"github.com/bos-com/Recipe-management-System/internal/infrastructure/slot"
	"github.com/bos-com/Recipe-management-System/internal/messaging"
	"github.com/bos-com/Recipe-management-System/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// app collects the cleanup hooks of everything opened during startup.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *gorm.DB
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// sqlDB opens the relational database once; the recipe source and the slot
// backend share it.
func (a *app) sqlDB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := postgres.Open(a.cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	a.db = db
	a.closers = append(a.closers, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db, nil
}

func (a *app) collectionSlot(ctx context.Context) (slot.Slot, error) {
	switch a.cfg.SlotBackend {
	case slot.BackendMemory:
		return slot.NewMemorySlot(), nil
	case slot.BackendFile:
		return slot.NewFileSlot(a.cfg.SlotDir), nil
	case slot.BackendRedis:
		client, err := infrastructure.NewRedisClient(ctx, infrastructure.RedisOptions{
			URL:      a.cfg.Redis.URL,
			Host:     a.cfg.Redis.Host,
			Port:     a.cfg.Redis.Port,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		return slot.NewRedisSlot(client), nil
	case slot.BackendSQL:
		db, err := a.sqlDB()
		if err != nil {
			return nil, err
		}
		return slot.NewSQLSlot(db)
	}
	return nil, fmt.Errorf("unknown slot backend %q", a.cfg.SlotBackend)
}

func (a *app) recipeSource(ctx context.Context) (repositories.RecipeRepository, repositories.ReviewRepository, error) {
	switch a.cfg.RecipeSource {
	case config.RecipeSourceSQL:
		db, err := a.sqlDB()
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(db); err != nil {
			return nil, nil, err
		}
		return postgres.NewRecipeRepository(db), postgres.NewReviewRepository(db), nil
	case config.RecipeSourceMongo:
		client, err := mongo.Connect(ctx, a.cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		})
		database := a.cfg.MongoDB
		if database == "" {
			database = mongo.DefaultDatabase
		}
		return mongo.NewRecipeRepository(client.Database(database)), sample.NewReviewRepository(a.cfg.SeedReviews), nil
	default:
		return sample.NewRecipeRepository(sample.Recipes()), sample.NewReviewRepository(a.cfg.SeedReviews), nil
	}
}

// events connects to NATS when configured. Without NATS_URL collection
// changes are not published.
func (a *app) events(ctx context.Context) (*messaging.EventPublisher, error) {
	if a.cfg.NATSURL == "" {
		a.logger.Info("nats: NATS_URL not set, collection events disabled")
		return messaging.NewEventPublisher(nil, a.logger), nil
	}

	nc, err := messaging.Connect(ctx, a.cfg.NATSURL, a.logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() { messaging.Close(nc, a.logger) })

	if _, err := messaging.RespondHealth(nc); err != nil {
		return nil, fmt.Errorf("nats: subscribe %s: %w", messaging.HealthSubject, err)
	}
	return messaging.NewEventPublisher(nc, a.logger), nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	a := &app{cfg: cfg, logger: logger}
	defer a.close()

	recipeRepo, reviewRepo, err := a.recipeSource(ctx)
	if err != nil {
		return fmt.Errorf("recipe source %s: %w", cfg.RecipeSource, err)
	}

	backend, err := a.collectionSlot(ctx)
	if err != nil {
		return fmt.Errorf("slot backend %s: %w", cfg.SlotBackend, err)
	}

	events, err := a.events(ctx)
	if err != nil {
		return err
	}

	registry := store.NewRegistry(backend, cfg.CollectionScope, logger, events.Listener())
	checker := access.NewChecker(logger)
	reviewLimiter := infrastructure.NewRateLimiter(cfg.ReviewRateWindow, cfg.ReviewRateMax)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

	h := handler.NewHandler(
		services.NewRecipeService(recipeRepo, checker, logger),
		services.NewReviewService(recipeRepo, reviewRepo, checker, reviewLimiter, logger),
		services.NewCollectionService(registry, recipeRepo, logger),
		services.NewPortabilityService(recipeRepo, registry, checker, logger),
		services.NewSessionService(jwtService, cfg.AdminEmails, logger),
		logger,
	)
	e := handler.NewServer(h, rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			"addr", cfg.HTTPAddr,
			"recipe_source", cfg.RecipeSource,
			"slot_backend", cfg.SlotBackend,
			"collection_scope", cfg.CollectionScope,
		)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		return e.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		reviewLimiter.Run(gctx, cfg.ReviewRateWindow)
		return nil
	})

	return g.Wait()
}
