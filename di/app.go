package di

import (
	"context"
	"desk/config"
	"desk/infras/kafka"
	"desk/infras/otel"
	"desk/infras/postgres"
	boardService "desk/internal/domains/board/service"
	recordService "desk/internal/domains/record/service"

	"github.com/rs/zerolog/log"
)

// App is the service graph used by the command line tools.
type App struct {
	Config   *config.Config
	Otel     otel.Otel
	Events   kafka.Client
	Postgres *postgres.Connection
	Records  recordService.Record
	Board    boardService.Board
}

// Close flushes traces and releases connections.
func (a *App) Close(ctx context.Context) {
	if err := a.Events.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := a.Postgres.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Postgres connection")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
