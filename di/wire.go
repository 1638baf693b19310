//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	infraKafka "inn/infras/kafka"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/shared/cache"
	"inn/shared/clock"
	transportKafka "inn/transport/kafka"

	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	infraKafka.New,
	clock.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

func InitializeWorker() *transportKafka.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		transportKafka.New,
	)

	return &transportKafka.Worker{}
}

func InitializeRoomService() roomService.Room {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		roomDomain,
	)

	return nil
}
