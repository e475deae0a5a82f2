//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/infras/s3"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	"github.com/google/wire"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	cartService "lodge/internal/domains/cart/service"
	cartStore "lodge/internal/domains/cart/store"
	hotelRepository "lodge/internal/domains/hotel/repository"
	hotelService "lodge/internal/domains/hotel/service"
	reviewRepository "lodge/internal/domains/review/repository"
	reviewService "lodge/internal/domains/review/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"

	authService "lodge/internal/domains/auth/service"

	authHandler "lodge/internal/handlers/auth"
	bookingHandler "lodge/internal/handlers/booking"
	cartHandler "lodge/internal/handlers/cart"
	healthHandler "lodge/internal/handlers/health"
	hotelHandler "lodge/internal/handlers/hotel"
	reviewHandler "lodge/internal/handlers/review"
	roomHandler "lodge/internal/handlers/room"
	userHandler "lodge/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var cartDomain = wire.NewSet(
	cartStore.New,
	cartService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewTimelineEvent,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	hotelDomain,
	roomDomain,
	cartDomain,
	bookingDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	cartHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	healthHandler.New,
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
