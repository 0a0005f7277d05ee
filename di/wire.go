//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	"innkeep/shared/bookingid"
	"innkeep/shared/cache"
	"innkeep/transport/cli"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	bookingRepository "innkeep/internal/domains/booking/repository"
	bookingService "innkeep/internal/domains/booking/service"
	customerRepository "innkeep/internal/domains/customer/repository"
	customerService "innkeep/internal/domains/customer/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"

	bookingHandler "innkeep/internal/handlers/booking"
	customerHandler "innkeep/internal/handlers/customer"
	roomHandler "innkeep/internal/handlers/room"

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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	bookingid.NewRandom,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	customerDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	customerHandler.New,
	bookingHandler.New,
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
		http.New,
	)

	return &http.HTTP{}
}

func InitializeMenu() *cli.Menu {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		roomDomain,
		bookingDomain,
		cli.NewStdio,
	)

	return &cli.Menu{}
}
