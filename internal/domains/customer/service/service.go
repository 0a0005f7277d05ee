package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/customer/model"
	"innkeep/internal/domains/customer/model/dto"
	"innkeep/internal/domains/customer/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCustomer = "customer:get"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	Get(ctx context.Context, id int64) (dto.CustomerResponse, error)
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.InsertReturningID(ctx, req.ToModel())
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict("a customer with this email already exists") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	customer := req.ToModel()
	customer.ID = id
	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCustomer, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer")

		return res, nil
	}

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		return res, failure.NotFound("customer not found") //nolint:wrapcheck
	}

	res.FromModel(customer)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save customer to cache")
		}
	}()

	return res, nil
}
