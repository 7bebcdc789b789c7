// Command server runs the NUJJUM accessibility API.
//
// The document store and the SOS guard are soft dependencies: when either is
// unreachable at startup the process still serves the static endpoints and
// reports the degradation through GET /test.
//
// @title        NUJJUM API
// @version      1.0
// @description  Adaptive accessibility platform for Persons of Determination (POD)
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nujjum/accessibility-api/internal/api"
	"github.com/nujjum/accessibility-api/internal/core/ports"
	"github.com/nujjum/accessibility-api/internal/infrastructure/config"
	mongodb "github.com/nujjum/accessibility-api/internal/infrastructure/db/mongo"
	redisdb "github.com/nujjum/accessibility-api/internal/infrastructure/db/redis"
	"github.com/nujjum/accessibility-api/pkg/logger"
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

	// --- Document store (degrades to Disconnected) ---
	var store ports.DocumentStore
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Warn().Err(err).Msg("document store unavailable, continuing without persistence")
		store = mongodb.Disconnected{Reason: err}
	} else {
		store = mongodb.NewDocumentStore(db)
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
	}

	// --- SOS guard (optional) ---
	var guard *redisdb.RecentSosGuard
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, sos guard disabled")
	} else {
		guard = redisdb.NewRecentSosGuard(rdb)
		defer func() { _ = rdb.Close() }()
	}

	e := api.NewRouter(store, guard, config.DatabaseURLSet(), config.DatabaseNameSet(), log)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
