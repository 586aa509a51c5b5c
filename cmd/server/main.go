package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/movieflix/movieflix-api/internal/api"
	"github.com/movieflix/movieflix-api/internal/core/ports"
	"github.com/movieflix/movieflix-api/internal/core/service"
	"github.com/movieflix/movieflix-api/internal/infrastructure/catalog"
	"github.com/movieflix/movieflix-api/internal/infrastructure/config"
	"github.com/movieflix/movieflix-api/internal/infrastructure/credential"
	"github.com/movieflix/movieflix-api/internal/infrastructure/db/memory"
	mongodb "github.com/movieflix/movieflix-api/internal/infrastructure/db/mongo"
	redisdb "github.com/movieflix/movieflix-api/internal/infrastructure/db/redis"
	"github.com/movieflix/movieflix-api/internal/infrastructure/queue"
	"github.com/movieflix/movieflix-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Key/value backend + search counter ---
	var kv ports.KVStore
	var counter ports.SearchCounter

	switch cfg.Store.Backend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		kv = redisdb.NewKV(client)
		counter = redisdb.NewSearchCounter(client)

	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		kv = mongodb.NewKV(db)
		counter = mongodb.NewSearchCounter(db)

	default:
		kv = memory.NewKV()
		counter = memory.NewSearchCounter()
	}

	log.Info().Str("backend", cfg.Store.Backend).Msg("store initialised")

	// --- Services ---
	dispatcher := queue.NewDispatcher(cfg.Search.CountWorkers, counter, log)
	dispatcher.Start(ctx)

	creds := credential.New(kv)
	authService := service.NewAuthService(creds, log)

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL: cfg.TMDB.BaseURL,
		APIKey:  cfg.TMDB.APIKey,
		Timeout: cfg.TMDB.Timeout,
	}, log)
	catalogService := service.NewCatalogService(catalogClient, dispatcher, log)

	browse := service.NewBrowseSession(catalogService, cfg.Search.DebounceDelay, log)
	browse.Start()

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Auth:    authService,
		Catalog: catalogService,
		Browse:  browse,
		Creds:   creds,
		KV:      kv,
		Log:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("movieflix api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
