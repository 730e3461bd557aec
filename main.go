package main

import (
	"context"
	"fmt"

	"stash/config"
	"stash/di"
	"stash/driver/stash_db"
	"stash/rest"
	"stash/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	log := logger.InitLogger()
	log.Info("starting bookmark search service")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectionTimeout)
	defer cancel()

	pool, err := stash_db.InitDBPool(ctx)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Error("server stopped", "error", err)
		panic(err)
	}
}
