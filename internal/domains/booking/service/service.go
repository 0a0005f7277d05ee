package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/pricing"
	"innkeep/internal/domains/booking/repository"
	roomRepo "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"
	"innkeep/shared"
	"innkeep/shared/bookingid"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking = "booking:get"
)

type Booking interface {
	Book(ctx context.Context, req dto.BookRoomRequest) (dto.BookingConfirmation, error)
	GetDetail(ctx context.Context, id string) (dto.BookingDetailResponse, error)
	GetOccupiedBetween(ctx context.Context, start, end string) (dto.GetOccupancyResponse, error)
	GetSoonOccupied(ctx context.Context) (dto.GetOccupancyResponse, error)
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	producer kafka.Producer
	idGen    bookingid.Generator
	pricer   pricing.Calculator
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	producer kafka.Producer,
	idGen bookingid.Generator,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		producer: producer,
		idGen:    idGen,
		pricer:   pricing.FromConfig(cfg),
	}
}

// Book reserves a room: it validates the request, prices the stay, allocates
// a booking reference, and persists the booking while flipping the room to
// occupied. Everything from the room lookup onward runs in one transaction,
// so a failure at any step leaves no trace.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookRoomRequest) (res dto.BookingConfirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	normalized, err := req.Normalize()
	if err != nil {
		return res, err
	}

	var (
		booking model.Booking
		roomNo  string
	)

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, normalized.RoomID)
		if err != nil {
			return err
		}

		if room.ID == 0 {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		if room.Occupied {
			return failure.RoomUnavailable //nolint:wrapcheck
		}

		roomNo = room.RoomNo

		rate := room.PricePerDay
		if normalized.Mode == model.ModeHours {
			rate = room.PricePerHour
		}

		quote := s.pricer.Quote(normalized.DurationValue, rate, normalized.AdvanceReceived)
		res.FromQuote(constant.Empty, roomNo, normalized, quote)

		inserted := false
		for range s.cfg.Booking.IDMaxAttempts {
			booking = normalized.ToModel(s.idGen.Generate(), timezone.Today(), quote)

			err = s.repo.InsertTx(ctx, tx, booking)
			if err == nil {
				inserted = true

				break
			}

			if postgres.IsUniqueViolation(err) {
				log.Warn().Str("bookingID", booking.ID).Msg("booking id collision, regenerating")

				continue
			}

			if postgres.IsForeignKeyViolation(err) {
				return failure.BadRequestFromString("customer does not exist") //nolint:wrapcheck
			}

			return err
		}

		if !inserted {
			return failure.IdentifierExhausted //nolint:wrapcheck
		}

		return s.roomRepo.SetOccupiedTx(ctx, tx, room.ID, true)
	})
	if err != nil {
		return dto.BookingConfirmation{}, err
	}

	res.BookingID = booking.ID

	go func() {
		c := context.WithoutCancel(ctx)

		roomService.InvalidateListings(c, s.cache)

		event := dto.BookingEvent{
			BookingID:     booking.ID,
			RoomID:        booking.RoomID,
			CustomerID:    booking.CustomerID,
			OccupancyDate: timezone.Format(booking.OccupancyDate, constant.DateOnly),
			TotalAmount:   booking.TotalAmount,
		}

		if err := s.producer.SendMessages(c, constant.KafkaTopicBookingConfirmed, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetDetail(ctx context.Context, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking detail")

		return res, fmt.Errorf("failed to get booking detail: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(detail)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// GetOccupiedBetween reports the rooms occupied in the inclusive date window.
// Both bounds arrive as YYYY-MM-DD strings.
func (s *serviceImpl) GetOccupiedBetween(ctx context.Context, start, end string) (res dto.GetOccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOccupiedBetween")
	defer scope.End()
	defer scope.TraceIfError(err)

	startDate, err := timezone.Parse(constant.DateOnly, start)
	if err != nil {
		return res, failure.BadRequestFromString("start date must be a valid date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	endDate, err := timezone.Parse(constant.DateOnly, end)
	if err != nil {
		return res, failure.BadRequestFromString("end date must be a valid date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return res, failure.BadRequestFromString("end date cannot be before start date") //nolint:wrapcheck
	}

	records, err := s.repo.GetOccupiedBetween(ctx, startDate, endDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupied rooms")

		return res, fmt.Errorf("failed to get occupied rooms: %w", err)
	}

	res.FromModels(records)

	return res, nil
}

// GetSoonOccupied reports rooms whose occupancy begins between today and the
// configured number of days ahead.
func (s *serviceImpl) GetSoonOccupied(ctx context.Context) (res dto.GetOccupancyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSoonOccupied")
	defer scope.End()
	defer scope.TraceIfError(err)

	start := timezone.Today()
	end := start.AddDate(0, 0, s.cfg.Booking.SoonOccupiedDays)

	records, err := s.repo.GetOccupiedBetween(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get soon occupied rooms")

		return res, fmt.Errorf("failed to get soon occupied rooms: %w", err)
	}

	res.FromModels(records)

	return res, nil
}

// Cancel releases a booking: the booking row is removed and its room returns
// to the unoccupied pool, atomically.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		return s.roomRepo.SetOccupiedTx(ctx, tx, booking.RoomID, false)
	})
	if err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		roomService.InvalidateListings(c, s.cache)

		event := dto.BookingEvent{
			BookingID:     booking.ID,
			RoomID:        booking.RoomID,
			CustomerID:    booking.CustomerID,
			OccupancyDate: timezone.Format(booking.OccupancyDate, constant.DateOnly),
			TotalAmount:   booking.TotalAmount,
		}

		if err := s.producer.SendMessages(c, constant.KafkaTopicBookingCancelled, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking cancelled event")
		}
	}()

	return nil
}
