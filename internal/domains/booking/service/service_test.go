package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	kafkaMocks "innkeep/infras/kafka/mocks"
	"innkeep/infras/otel/mocks"
	bookingMocks "innkeep/internal/domains/booking/mocks"
	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/service"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	idMocks "innkeep/shared/bookingid/mocks"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/failure"
)

type bookingFixture struct {
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	producer *kafkaMocks.MockProducer
	idGen    *idMocks.MockGenerator
	svc      service.Booking
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.TaxRate = decimal.RequireFromString("0.18")
	cfg.Booking.HousekeepingFee = decimal.RequireFromString("100.00")
	cfg.Booking.MiscFee = decimal.RequireFromString("50.00")
	cfg.Booking.IDMaxAttempts = 3
	cfg.Booking.SoonOccupiedDays = 2

	f := &bookingFixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		producer: kafkaMocks.NewMockProducer(ctrl),
		idGen:    idMocks.NewMockGenerator(ctrl),
	}

	// Cache invalidation and event publishing happen on background
	// goroutines after commit.
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.roomRepo, cfg, f.cache, mocks.NewOtel(), f.producer, f.idGen)

	return f
}

func (f *bookingFixture) expectTransaction() {
	f.repo.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:           2,
		RoomNo:       "101",
		Category:     roomModel.CategorySingle,
		PricePerDay:  decimal.RequireFromString("1000.00"),
		PricePerHour: decimal.RequireFromString("150.00"),
		Occupied:     false,
	}
}

func validRequest() dto.BookRoomRequest {
	days := int64(3)

	return dto.BookRoomRequest{
		CustomerID:      1,
		RoomID:          2,
		OccupancyDate:   "2026-09-15",
		Days:            &days,
		AdvanceReceived: decimal.RequireFromString("200.00"),
	}
}

func TestBookingService_Book(t *testing.T) {
	t.Run("successful booking", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
			Return(availableRoom(), nil)
		f.idGen.EXPECT().Generate().Return("QX30571")
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				assert.Equal(t, "QX30571", booking.ID)
				assert.EqualValues(t, 3, booking.Days)
				assert.EqualValues(t, 0, booking.Hours)
				assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString("3490.00")), "total = %s", booking.TotalAmount)

				return nil
			})
		f.roomRepo.EXPECT().
			SetOccupiedTx(gomock.Any(), gomock.Any(), int64(2), true).
			Return(nil)

		res, err := f.svc.Book(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, "QX30571", res.BookingID)
		assert.Equal(t, "101", res.RoomNo)
		assert.Equal(t, "3 day(s)", res.Duration)
		assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("3490.00")), "total = %s", res.TotalAmount)
	})

	t.Run("hourly room uses the hourly rate", func(t *testing.T) {
		f := newBookingFixture(t)

		room := roomModel.Room{
			ID:           5,
			RoomNo:       "H1",
			Category:     roomModel.CategoryBallroom,
			PricePerDay:  decimal.Zero,
			PricePerHour: decimal.RequireFromString("500.00"),
		}

		hours := int64(4)
		req := dto.BookRoomRequest{
			CustomerID:      1,
			RoomID:          5,
			OccupancyDate:   "2026-09-15",
			Hours:           &hours,
			AdvanceReceived: decimal.Zero,
		}

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(5)).
			Return(room, nil)
		f.idGen.EXPECT().Generate().Return("AB11111")
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.roomRepo.EXPECT().
			SetOccupiedTx(gomock.Any(), gomock.Any(), int64(5), true).
			Return(nil)

		res, err := f.svc.Book(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "4 hour(s)", res.Duration)
		assert.True(t, res.TotalAmount.Equal(decimal.RequireFromString("2510.00")), "total = %s", res.TotalAmount)
	})

	t.Run("validation failure stops before any persistence", func(t *testing.T) {
		f := newBookingFixture(t)

		days, hours := int64(3), int64(4)
		req := validRequest()
		req.Days = &days
		req.Hours = &hours

		_, err := f.svc.Book(context.Background(), req)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("room not found", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
			Return(roomModel.Room{}, nil)

		_, err := f.svc.Book(context.Background(), validRequest())

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("occupied room is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		room := availableRoom()
		room.Occupied = true

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
			Return(room, nil)

		_, err := f.svc.Book(context.Background(), validRequest())

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusConflict))
	})

	t.Run("identifier collisions exhaust the retry budget", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
			Return(availableRoom(), nil)
		f.idGen.EXPECT().Generate().Return("AA00001").Times(3)
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"}).
			Times(3)

		_, err := f.svc.Book(context.Background(), validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, failure.IdentifierExhausted)
	})

	t.Run("collision then success regenerates the id", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
			Return(availableRoom(), nil)

		gomock.InOrder(
			f.idGen.EXPECT().Generate().Return("AA00001"),
			f.idGen.EXPECT().Generate().Return("BB00002"),
		)
		gomock.InOrder(
			f.repo.EXPECT().
				InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&pq.Error{Code: "23505"}),
			f.repo.EXPECT().
				InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil),
		)
		f.roomRepo.EXPECT().
			SetOccupiedTx(gomock.Any(), gomock.Any(), int64(2), true).
			Return(nil)

		res, err := f.svc.Book(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, "BB00002", res.BookingID)
	})

	t.Run("unknown customer surfaces as bad request", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
			Return(availableRoom(), nil)
		f.idGen.EXPECT().Generate().Return("AA00001")
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23503"})

		_, err := f.svc.Book(context.Background(), validRequest())

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("store error aborts the booking", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectTransaction()
		f.roomRepo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), int64(2)).
			Return(availableRoom(), nil)
		f.idGen.EXPECT().Generate().Return("AA00001")
		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := f.svc.Book(context.Background(), validRequest())

		require.Error(t, err)
		assert.False(t, failure.Is(err, http.StatusConflict))
	})
}

func TestBookingService_GetDetail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newBookingFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetDetail(gomock.Any(), "QX30571").
			Return(model.BookingDetail{
				ID:           "QX30571",
				Days:         3,
				RoomNo:       "101",
				Category:     roomModel.CategorySingle,
				CustomerName: "Asha Verma",
				TotalAmount:  decimal.RequireFromString("3490.00"),
			}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.GetDetail(context.Background(), "QX30571")

		require.NoError(t, err)
		assert.Equal(t, "QX30571", res.BookingID)
		assert.Equal(t, "3 day(s)", res.Duration)
		assert.Equal(t, "Asha Verma", res.CustomerName)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBookingFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetDetail(gomock.Any(), "ZZ99999").
			Return(model.BookingDetail{}, nil)

		_, err := f.svc.GetDetail(context.Background(), "ZZ99999")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}

func TestBookingService_GetOccupiedBetween(t *testing.T) {
	t.Run("returns records in the window", func(t *testing.T) {
		f := newBookingFixture(t)

		records := []model.OccupancyRecord{
			{BookingID: "AB11111", RoomNo: "101", Category: roomModel.CategorySingle, Days: 3},
			{BookingID: "CD22222", RoomNo: "H1", Category: roomModel.CategoryBallroom, Hours: 4},
		}

		f.repo.EXPECT().
			GetOccupiedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]model.OccupancyRecord, error) {
				assert.False(t, end.Before(start))

				return records, nil
			})

		res, err := f.svc.GetOccupiedBetween(context.Background(), "2026-09-01", "2026-09-03")

		require.NoError(t, err)
		require.Len(t, res.Records, 2)
		assert.Equal(t, "3 day(s)", res.Records[0].Duration)
		assert.Equal(t, "4 hour(s)", res.Records[1].Duration)
	})

	t.Run("empty window is not an error", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			GetOccupiedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := f.svc.GetOccupiedBetween(context.Background(), "2026-09-01", "2026-09-03")

		require.NoError(t, err)
		assert.Empty(t, res.Records)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.GetOccupiedBetween(context.Background(), "2026-09-03", "2026-09-01")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})

	t.Run("malformed bound is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.GetOccupiedBetween(context.Background(), "not-a-date", "2026-09-01")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusBadRequest))
	})
}

func TestBookingService_GetSoonOccupied(t *testing.T) {
	f := newBookingFixture(t)

	f.repo.EXPECT().
		GetOccupiedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time) ([]model.OccupancyRecord, error) {
			assert.Equal(t, 48*time.Hour, end.Sub(start))

			return []model.OccupancyRecord{{BookingID: "AB11111", RoomNo: "101"}}, nil
		})

	res, err := f.svc.GetSoonOccupied(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "101", res.Records[0].RoomNo)
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("successful cancellation releases the room", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "AB11111", RoomID: 2, CustomerID: 1}, nil)
		f.expectTransaction()
		f.repo.EXPECT().
			DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		f.roomRepo.EXPECT().
			SetOccupiedTx(gomock.Any(), gomock.Any(), int64(2), false).
			Return(nil)

		err := f.svc.Cancel(context.Background(), "AB11111")

		require.NoError(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := f.svc.Cancel(context.Background(), "ZZ99999")

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}
