//go:build wireinject
// +build wireinject

package di

import (
	"desk/config"
	"desk/infras/kafka"
	"desk/infras/otel"
	"desk/infras/postgres"
	"desk/infras/redis"
	"desk/infras/s3"
	"desk/infras/webhook"
	boardHandler "desk/internal/handlers/board"
	recordHandler "desk/internal/handlers/record"
	"desk/shared/cache"
	"desk/transport/http"
	"desk/transport/http/middleware"
	"desk/transport/http/router"

	boardService "desk/internal/domains/board/service"
	notificationService "desk/internal/domains/notification/service"
	recordRepository "desk/internal/domains/record/repository"
	recordService "desk/internal/domains/record/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var coreInfrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	kafka.New,
	s3.New,
	webhook.New,
)

var infrastructures = wire.NewSet(
	coreInfrastructures,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var recordDomain = wire.NewSet(
	recordRepository.NewBooking,
	recordRepository.NewContact,
	notificationService.New,
	recordService.New,
)

var boardDomain = wire.NewSet(
	boardService.New,
)

var domains = wire.NewSet(
	recordDomain,
	boardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	recordHandler.New,
	boardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		wire.Struct(new(http.Resources), "*"),
		http.New,
	)

	return &http.HTTP{}
}

func InitializeApp() *App {
	wire.Build(
		configurations,
		coreInfrastructures,
		domains,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
