package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"pocket/config"
	"pocket/di"
	"pocket/rest"
	"pocket/utils/logger"
)

func main() {
	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}

	ctx := context.Background()
	store, cleanup, err := di.NewStoreBackend(ctx, cfg)
	if err != nil {
		logger.Logger.Error("Failed to initialize article store", "error", err)
		panic(err)
	}
	defer cleanup()

	extractor := di.NewContentExtractor(cfg)
	container := di.NewApplicationComponents(store, extractor, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
