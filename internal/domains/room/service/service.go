package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"

	"github.com/rs/zerolog/log"
)

// Cache key prefixes are exported because booking writes also invalidate
// room listings (the occupied flag changes).
const (
	CacheGetRoom        = "room:get"
	CacheGetAllRoom     = "room:gets"
	CacheCountRoom      = "room:count"
	CacheRoomsByRate    = "room:by_rate"
	CacheUnoccupiedRoom = "room:unoccupied"
)

// InvalidateListings drops every cached room listing. Call it after any write
// that changes room state.
func InvalidateListings(ctx context.Context, redisCache cache.RedisCache) {
	shared.InvalidateCaches(ctx, redisCache, CacheGetAllRoom)
	shared.InvalidateCaches(ctx, redisCache, CacheCountRoom)
	shared.InvalidateCaches(ctx, redisCache, CacheRoomsByRate)
	shared.InvalidateCaches(ctx, redisCache, CacheUnoccupiedRoom)
}

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	ListByCategory(ctx context.Context, category string) (dto.GetRoomRatesResponse, error)
	ListByRate(ctx context.Context) (dto.GetRoomRatesResponse, error)
	ListUnoccupied(ctx context.Context) (dto.GetRoomsResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.RoomNo, model.FieldRoomNo, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return failure.Conflict("room number already exists") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		InvalidateListings(c, s.cache)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(CacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(CacheGetRoom, fmt.Sprintf("%d", id))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// ListByCategory returns the rate card for rooms of one category. An unknown
// category yields an empty listing rather than an error.
func (s *serviceImpl) ListByCategory(ctx context.Context, category string) (res dto.GetRoomRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCategory")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCategory,
				Value:    category,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAllRoom, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms by category")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRoomNo, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms by category")

		return res, fmt.Errorf("failed to get rooms by category: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms by category to cache")
		}
	}()

	return res, nil
}

// ListByRate returns every room ordered ascending by daily rate, hourly rate
// as tie-break.
func (s *serviceImpl) ListByRate(ctx context.Context) (res dto.GetRoomRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(CacheRoomsByRate, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms by rate")

		return res, nil
	}

	models, err := s.repo.GetAllSortedByRate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms by rate")

		return res, fmt.Errorf("failed to get rooms by rate: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms by rate to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListUnoccupied(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUnoccupied")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(CacheUnoccupiedRoom, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for unoccupied rooms")

		return res, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOccupied,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRoomNo, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get unoccupied rooms")

		return res, fmt.Errorf("failed to get unoccupied rooms: %w", err)
	}

	res.FromModels(models, len(models), 0)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save unoccupied rooms to cache")
		}
	}()

	return res, nil
}
