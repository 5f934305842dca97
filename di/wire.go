//go:build wireinject
// +build wireinject

package di

import (
	"riminspect/config"
	"riminspect/infras/delayqueue"
	"riminspect/infras/kafka"
	"riminspect/infras/otel"
	"riminspect/infras/postgres"
	"riminspect/infras/redis"
	"riminspect/infras/s3"
	"riminspect/shared/cache"
	"riminspect/shared/clock"
	"riminspect/transport/http"
	"riminspect/transport/http/middleware"
	"riminspect/transport/http/router"

	scheduleEvent "riminspect/internal/domains/schedule/event"
	scheduleRepository "riminspect/internal/domains/schedule/repository"
	scheduleService "riminspect/internal/domains/schedule/service"
	"riminspect/internal/domains/schedule/transition"
	scheduleHandler "riminspect/internal/handlers/schedule"

	inspectionRepository "riminspect/internal/domains/inspection/repository"
	inspectionService "riminspect/internal/domains/inspection/service"
	inspectionHandler "riminspect/internal/handlers/inspection"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	delayqueue.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleEvent.NewKafka,
	scheduleService.New,
	transition.NewApplier,
	transition.NewWorker,
)

var inspectionDomain = wire.NewSet(
	inspectionRepository.New,
	inspectionService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	inspectionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	scheduleHandler.New,
	inspectionHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
