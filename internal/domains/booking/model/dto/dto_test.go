package dto_test

import (
	"testing"
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/model/dto"
	"innkeep/internal/domains/booking/pricing"
	"innkeep/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestBookRoomRequest_Normalize(t *testing.T) {
	base := dto.BookRoomRequest{
		CustomerID:      1,
		RoomID:          2,
		OccupancyDate:   "2026-09-15",
		AdvanceReceived: decimal.RequireFromString("200.00"),
	}

	tests := []struct {
		name     string
		mutate   func(req *dto.BookRoomRequest)
		wantErr  bool
		wantMode model.DurationMode
		wantVal  int64
	}{
		{
			name: "days only",
			mutate: func(req *dto.BookRoomRequest) {
				req.Days = int64Ptr(3)
			},
			wantMode: model.ModeDays,
			wantVal:  3,
		},
		{
			name: "hours only",
			mutate: func(req *dto.BookRoomRequest) {
				req.Hours = int64Ptr(4)
			},
			wantMode: model.ModeHours,
			wantVal:  4,
		},
		{
			name: "both days and hours",
			mutate: func(req *dto.BookRoomRequest) {
				req.Days = int64Ptr(3)
				req.Hours = int64Ptr(4)
			},
			wantErr: true,
		},
		{
			name:    "neither days nor hours",
			mutate:  func(req *dto.BookRoomRequest) {},
			wantErr: true,
		},
		{
			name: "zero days",
			mutate: func(req *dto.BookRoomRequest) {
				req.Days = int64Ptr(0)
			},
			wantErr: true,
		},
		{
			name: "negative hours",
			mutate: func(req *dto.BookRoomRequest) {
				req.Hours = int64Ptr(-2)
			},
			wantErr: true,
		},
		{
			name: "malformed occupancy date",
			mutate: func(req *dto.BookRoomRequest) {
				req.Days = int64Ptr(3)
				req.OccupancyDate = "15/09/2026"
			},
			wantErr: true,
		},
		{
			name: "negative advance",
			mutate: func(req *dto.BookRoomRequest) {
				req.Days = int64Ptr(3)
				req.AdvanceReceived = decimal.RequireFromString("-1.00")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)

			normalized, err := req.Normalize()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, 400), "expected a bad request failure, got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, normalized.Mode)
			assert.Equal(t, tt.wantVal, normalized.DurationValue)
			assert.Equal(t, 2026, normalized.OccupancyDate.Year())
			assert.Equal(t, time.September, normalized.OccupancyDate.Month())
			assert.Equal(t, 15, normalized.OccupancyDate.Day())
		})
	}
}

func TestNormalizedBookRoom_ToModel(t *testing.T) {
	req := dto.BookRoomRequest{
		CustomerID:      7,
		RoomID:          9,
		OccupancyDate:   "2026-09-15",
		Hours:           int64Ptr(4),
		AdvanceReceived: decimal.Zero,
	}

	normalized, err := req.Normalize()
	require.NoError(t, err)

	calc := pricing.New(
		decimal.RequireFromString("0.18"),
		decimal.RequireFromString("100.00"),
		decimal.RequireFromString("50.00"),
	)
	quote := calc.Quote(normalized.DurationValue, decimal.RequireFromString("500.00"), normalized.AdvanceReceived)

	bookingDate := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	booking := normalized.ToModel("QX30571", bookingDate, quote)

	assert.Equal(t, "QX30571", booking.ID)
	assert.Equal(t, int64(7), booking.CustomerID)
	assert.Equal(t, int64(9), booking.RoomID)
	assert.Equal(t, bookingDate, booking.BookingDate)
	assert.EqualValues(t, 0, booking.Days)
	assert.EqualValues(t, 4, booking.Hours)
	assert.True(t, booking.TotalAmount.Equal(decimal.RequireFromString("2510.00")), "total = %s", booking.TotalAmount)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3 day(s)", dto.FormatDuration(3, 0))
	assert.Equal(t, "4 hour(s)", dto.FormatDuration(0, 4))
}
