package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/oookbaaa/Bridge-front-sub000/internal/api"
	"github.com/oookbaaa/Bridge-front-sub000/internal/config"
	"github.com/oookbaaa/Bridge-front-sub000/internal/factory"
	"github.com/oookbaaa/Bridge-front-sub000/internal/model"
	redisstorage "github.com/oookbaaa/Bridge-front-sub000/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		BackendURL:  cfg.BackendURL,
		FakeBackend: cfg.FakeBackend,
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Seed the embedded backend so local development has something to
	// sign in with
	if app.Fake != nil {
		seedFakeBackend(app)
		logger.Warn("running against the embedded fake backend, not for production use")
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Storage:        app.Storage,
		SessionManager: app.SessionManager,
		Backend:        app.Backend,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// seedFakeBackend loads development fixtures into the embedded backend
func seedFakeBackend(app *factory.App) {
	app.Fake.SeedUser(model.User{
		FirstName: "Amine",
		LastName:  "Ben Salah",
		Email:     "admin@ftb.tn",
		City:      "Tunis",
		IsActive:  true,
	}, "admin123", model.RoleAdmin)

	app.Fake.SeedTournament(model.Tournament{
		Name:      "Open de Tunis",
		Location:  "Tunis",
		StartDate: "2026-03-14",
		EndDate:   "2026-03-16",
		Status:    "upcoming",
	})

	app.Fake.SeedNews(model.News{
		Title:       "Season opener announced",
		Content:     "The federation season opens with the Open de Tunis in March.",
		Author:      "Federation staff",
		PublishedAt: "2026-01-05",
	})
}
