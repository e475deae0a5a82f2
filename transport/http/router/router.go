package router

import (
	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/cart"
	"lodge/internal/handlers/health"
	"lodge/internal/handlers/hotel"
	"lodge/internal/handlers/review"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Hotel   hotel.Handler
	Room    room.Handler
	Cart    cart.Handler
	Booking booking.Handler
	Review  review.Handler
	Health  health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Cart.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Health.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
