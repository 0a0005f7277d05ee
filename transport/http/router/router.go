package router

import (
	"innkeep/internal/handlers/booking"
	"innkeep/internal/handlers/customer"
	"innkeep/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room     room.Handler
	Customer customer.Handler
	Booking  booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
