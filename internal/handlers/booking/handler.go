package booking

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamStart = "start"
	requestParamEnd   = "end"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookRoom)
		routerGroup.Get("/occupied", handler.GetOccupiedRooms)
		routerGroup.Get("/soon-occupied", handler.GetSoonOccupiedRooms)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// BookRoom reserves a room for a customer and returns the booking reference
// with the full charge breakdown.
func (handler *Handler) BookRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	req := dto.BookRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	confirmation, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room booked successfully: " + confirmation.BookingID)

	response.WithJSON(w, http.StatusCreated, confirmation)
}

// GetOccupiedRooms lists rooms occupied in the inclusive ?start=&end= window.
func (handler *Handler) GetOccupiedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupiedRooms")
	defer scope.End()

	start := r.URL.Query().Get(requestParamStart)
	end := r.URL.Query().Get(requestParamEnd)

	if start == "" || end == "" {
		response.WithError(w, failure.BadRequestFromString("start and end dates are required"))

		return
	}

	records, err := handler.service.GetOccupiedBetween(ctx, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupied rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, records)
}

// GetSoonOccupiedRooms lists rooms whose occupancy starts within the
// configured look-ahead window.
func (handler *Handler) GetSoonOccupiedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSoonOccupiedRooms")
	defer scope.End()

	records, err := handler.service.GetSoonOccupied(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get soon occupied rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, records)
}

// GetBookingByID retrieves a booking joined with its room and customer.
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.GetDetail(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking releases a booking and returns its room to the pool.
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}
