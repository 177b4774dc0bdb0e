package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/planet-nakshatra/consultation-api/internal/api"
	"github.com/planet-nakshatra/consultation-api/internal/core/service"
	mongodb "github.com/planet-nakshatra/consultation-api/internal/infrastructure/db/mongo"
	redisdb "github.com/planet-nakshatra/consultation-api/internal/infrastructure/db/redis"
	"github.com/planet-nakshatra/consultation-api/internal/infrastructure/queue"
	"github.com/planet-nakshatra/consultation-api/internal/pkg/config"
	"github.com/planet-nakshatra/consultation-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Planet Nakshatra Consultation API
// @version 1.0
// @description Booking, catalog and contact API for the Planet Nakshatra consultation practice.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	dispatcher := queue.NewDispatcher(0, service.NewNotifierService(log), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("consultation api started")

	waitForShutdown(log)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewOfferingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewInquiryRepository(db).EnsureIndexes(ctx)
}

func waitForShutdown(log zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")
}
