package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	roomMocks "innkeep/internal/domains/room/mocks"
	"innkeep/internal/domains/room/model"
	"innkeep/internal/domains/room/model/dto"
	"innkeep/internal/domains/room/service"
	cacheMocks "innkeep/shared/cache/mocks"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

type roomFixture struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	svc   service.Room
}

func newRoomFixture(t *testing.T) *roomFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := &roomFixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache writes and invalidation run on background goroutines.
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	return f
}

func sampleRooms() []model.Room {
	return []model.Room{
		{
			ID:           1,
			RoomNo:       "101",
			Category:     model.CategorySingle,
			PricePerDay:  decimal.RequireFromString("1000.00"),
			PricePerHour: decimal.RequireFromString("150.00"),
		},
		{
			ID:           2,
			RoomNo:       "H1",
			Category:     model.CategoryBallroom,
			PricePerDay:  decimal.RequireFromString("1000.00"),
			PricePerHour: decimal.RequireFromString("500.00"),
		},
	}
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNo:       "101",
		Category:     "Single",
		PricePerDay:  decimal.RequireFromString("1000.00"),
		PricePerHour: decimal.RequireFromString("150.00"),
	}

	t.Run("successful creation", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "101", room.RoomNo)
				assert.Equal(t, model.CategorySingle, room.Category)
				assert.False(t, room.Occupied)

				return nil
			})

		err := f.svc.Create(context.Background(), req)

		require.NoError(t, err)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusConflict))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := f.svc.Create(context.Background(), req)

		require.Error(t, err)
	})
}

func TestRoomService_ListByCategory(t *testing.T) {
	t.Run("returns matching rooms", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(sampleRooms()[:1], nil)

		res, err := f.svc.ListByCategory(context.Background(), "Single")

		require.NoError(t, err)
		require.Len(t, res.Rooms, 1)
		assert.Equal(t, "101", res.Rooms[0].RoomNo)
	})

	t.Run("unknown category yields empty listing", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := f.svc.ListByCategory(context.Background(), "Penthouse")

		require.NoError(t, err)
		assert.Empty(t, res.Rooms)
	})
}

func TestRoomService_ListByRate(t *testing.T) {
	f := newRoomFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.repo.EXPECT().
		GetAllSortedByRate(gomock.Any()).
		Return(sampleRooms(), nil)

	res, err := f.svc.ListByRate(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Rooms, 2)

	// Equal daily rates tie-break on the hourly rate.
	assert.True(t, res.Rooms[0].PricePerDay.LessThanOrEqual(res.Rooms[1].PricePerDay))
	assert.True(t, res.Rooms[0].PricePerHour.LessThanOrEqual(res.Rooms[1].PricePerHour))
}

func TestRoomService_ListUnoccupied(t *testing.T) {
	f := newRoomFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "is_occupied")
			assert.Equal(t, false, args["is_occupied"])

			return sampleRooms(), nil
		})

	res, err := f.svc.ListUnoccupied(context.Background())

	require.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestRoomService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), 42)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})

	t.Run("found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(sampleRooms()[0], nil)

		res, err := f.svc.Get(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "101", res.RoomNo)
	})
}
