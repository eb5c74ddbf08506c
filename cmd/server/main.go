package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/tensorplex-labs/cutoff/internal/api"
	"github.com/tensorplex-labs/cutoff/internal/config"
	"github.com/tensorplex-labs/cutoff/internal/threshold"
	"github.com/tensorplex-labs/cutoff/internal/utils/logger"
)

func main() {
	logger.Init()
	defer func() { _ = logger.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	selector := threshold.NewSelector(
		threshold.WithGrid(threshold.Grid{Start: cfg.GridStart, Stop: cfg.GridStop, Step: cfg.GridStep}),
		threshold.WithWorkers(cfg.GridWorkers),
	)
	if err := selector.Grid.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid grid configuration")
	}

	server := api.NewServer(&api.ServerConfig{
		Host:      cfg.Host,
		Port:      cfg.Port,
		BodyLimit: cfg.BodyLimit,
	}, selector)

	if err := server.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
	log.Info().Msg("Server stopped")
}
