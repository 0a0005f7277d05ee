package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	customerMocks "innkeep/internal/domains/customer/mocks"
	"innkeep/internal/domains/customer/model"
	"innkeep/internal/domains/customer/model/dto"
	"innkeep/internal/domains/customer/service"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/failure"
)

func newCustomerService(t *testing.T) (service.Customer, *customerMocks.MockCustomer, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestCustomerService_Create(t *testing.T) {
	req := dto.CreateCustomerRequest{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "555-0101",
		Address: "12 Lake View Road",
	}

	t.Run("successful creation returns the assigned id", func(t *testing.T) {
		svc, mockRepo, _ := newCustomerService(t)

		mockRepo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			Return(int64(7), nil)

		res, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.EqualValues(t, 7, res.ID)
		assert.Equal(t, "Asha Verma", res.Name)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, mockRepo, _ := newCustomerService(t)

		mockRepo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			Return(int64(0), &pq.Error{Code: "23505"})

		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusConflict))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newCustomerService(t)

		mockRepo.EXPECT().
			InsertReturningID(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("database error"))

		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
	})
}

func TestCustomerService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache := newCustomerService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{ID: 7, Name: "Asha Verma", Email: "asha@example.com"}, nil)

		res, err := svc.Get(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", res.Email)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newCustomerService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{}, nil)

		_, err := svc.Get(context.Background(), 99)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusNotFound))
	})
}
