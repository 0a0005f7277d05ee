package room

import (
	"net/http"

	"innkeep/infras/otel"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/by-rate", handler.GetRoomsByRate)
		routerGroup.Get("/unoccupied", handler.GetUnoccupiedRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// CreateRoom registers a new room in the inventory.
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// GetRooms lists rooms, optionally filtered by category.
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	category := r.URL.Query().Get(model.FieldCategory)
	if category != "" {
		rooms, err := handler.service.ListByCategory(ctx, category)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to get rooms by category")

			response.WithError(w, err)

			return
		}

		response.WithJSON(w, http.StatusOK, rooms)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rooms, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomsByRate lists all rooms ordered by daily rate, then hourly rate.
func (handler *Handler) GetRoomsByRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomsByRate")
	defer scope.End()

	rooms, err := handler.service.ListByRate(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms by rate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetUnoccupiedRooms lists every room currently free.
func (handler *Handler) GetUnoccupiedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnoccupiedRooms")
	defer scope.End()

	rooms, err := handler.service.ListUnoccupied(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unoccupied rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a single room.
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("room id must be a number"))

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}
