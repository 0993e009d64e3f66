// Package main is the entry point for the propChase rental API.
package main

import (
	"context"
	"os"

	"github.com/propchase/rental-api/internal/api"
	"github.com/propchase/rental-api/internal/core/service"
	"github.com/propchase/rental-api/internal/infrastructure/config"
	mongodb "github.com/propchase/rental-api/internal/infrastructure/db/mongo"
	redisdb "github.com/propchase/rental-api/internal/infrastructure/db/redis"
	"github.com/propchase/rental-api/internal/infrastructure/storage"
	"github.com/propchase/rental-api/pkg/logger"
)

// @title propChase Rental API
// @version 1.0
// @description Property rental marketplace backend: identity, listings, bookings.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; write directly and bail.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Credential hashing must work before we accept a single request.
	if err := service.VerifyHashParams(); err != nil {
		log.Fatal().Err(err).Msg("password hashing self-check failed")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	// The unique email index is the actual uniqueness guarantee; creating
	// it must not fail silently.
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewPropertyRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("property index creation failed")
	}
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("booking index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	images, err := storage.NewImageStore(ctx, storage.Config{
		Region:       cfg.S3.Region,
		Bucket:       cfg.S3.Bucket,
		BaseEndpoint: cfg.S3.BaseEndpoint,
		AccessKey:    cfg.S3.AccessKey,
		SecretKey:    cfg.S3.SecretKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("image store init failed")
	}

	e := api.NewRouter(cfg, db, rdb, images, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
