//go:build wireinject
// +build wireinject

package di

import (
	"pororo/config"
	"pororo/infras/kafka"
	"pororo/infras/otel"
	"pororo/infras/redis"
	"pororo/shared/cache"
	"pororo/transport/http"
	"pororo/transport/http/middleware"
	"pororo/transport/http/router"

	"github.com/google/wire"

	bookingEvent "pororo/internal/domains/booking/event"
	bookingRepository "pororo/internal/domains/booking/repository"
	bookingService "pororo/internal/domains/booking/service"
	bookingHandler "pororo/internal/handlers/booking"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
