package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/winjhenshop/storefront-api/internal/api"
	"github.com/winjhenshop/storefront-api/internal/infrastructure/config"
	mongodb "github.com/winjhenshop/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/winjhenshop/storefront-api/internal/infrastructure/db/redis"
	"github.com/winjhenshop/storefront-api/pkg/activity"
	"github.com/winjhenshop/storefront-api/pkg/logger"

	_ "github.com/winjhenshop/storefront-api/docs"
)

// @title        Storefront API
// @version      1.0
// @description  Role-based storefront back-office: accounts, sessions, password resets, catalog, orders.
// @BasePath     /
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.DevMode(),
		Service: "storefront-api",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if cfg.SeedData {
		if err := mongodb.Seed(ctx, db, log); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	tracker := activity.NewTracker()
	e := api.NewRouter(cfg, log, db, rdb, tracker)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting storefront api")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewOrderRepository(db).EnsureIndexes(ctx)
}
