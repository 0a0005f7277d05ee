package customer

import (
	"net/http"
	"strconv"

	"innkeep/infras/otel"
	"innkeep/internal/domains/customer/model/dto"
	"innkeep/internal/domains/customer/service"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCustomer)
		routerGroup.Get("/{id}", handler.GetCustomerByID)
	})
}

// CreateCustomer registers a customer and returns the assigned id.
func (handler *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	customer, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Customer created successfully")

	response.WithJSON(w, http.StatusCreated, customer)
}

// GetCustomerByID retrieves a single customer.
func (handler *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("customer id must be a number"))

		return
	}

	customer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}
