// Package main provides the entry point for the catalyst API: a multi-tenant
// project and task management service exposing a GraphQL endpoint behind a
// tenant authorization gate.
package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/utkarshk014/catalyst/config"
	"github.com/utkarshk014/catalyst/database"
	gqlschema "github.com/utkarshk014/catalyst/graphql"
	"github.com/utkarshk014/catalyst/restapi"
	"github.com/utkarshk014/catalyst/store/postgres"
)

func main() {
	logger := database.InitLogger()
	defer logger.Sync() //nolint:errcheck

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	pool, err := database.Connect(context.Background(), cfg.DatabaseURL(), logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	st := postgres.New(pool)

	schema, err := gqlschema.CreateSchema(st)
	if err != nil {
		logger.Fatal("failed to create GraphQL schema", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:     "catalyst API v1.0",
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
	})

	app.Use(fiberrecover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	restapi.SetupRoutes(app, st, schema, logger)

	logger.Info("starting server",
		zap.String("port", cfg.Server.Port),
		zap.String("graphql_endpoint", "/api/v1/graphql"),
	)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
