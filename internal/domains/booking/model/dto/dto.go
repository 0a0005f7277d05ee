package dto

import (
	"fmt"
	"time"

	"innkeep/internal/domains/booking/model"
	"innkeep/internal/domains/booking/pricing"
	roomModel "innkeep/internal/domains/room/model"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"

	"github.com/shopspring/decimal"
)

type BookRoomRequest struct {
	CustomerID      int64           `json:"customer_id"      validate:"required,gt=0"`
	RoomID          int64           `json:"room_id"          validate:"required,gt=0"`
	OccupancyDate   string          `json:"occupancy_date"   validate:"required,dateonly"`
	Days            *int64          `json:"days"             validate:"omitempty,gt=0"`
	Hours           *int64          `json:"hours"            validate:"omitempty,gt=0"`
	AdvanceReceived decimal.Decimal `json:"advance_received" validate:"omitempty"`
}

// NormalizedBookRoom is a BookRoomRequest after validation: the occupancy
// date is parsed and the two optional duration fields are collapsed into a
// single mode and value.
type NormalizedBookRoom struct {
	CustomerID      int64
	RoomID          int64
	OccupancyDate   time.Time
	Mode            model.DurationMode
	DurationValue   int64
	AdvanceReceived decimal.Decimal
}

// Normalize checks the request and stops at the first violation: the
// occupancy date must parse, exactly one of days/hours must be a positive
// integer, and the advance cannot be negative.
func (r *BookRoomRequest) Normalize() (NormalizedBookRoom, error) {
	occupancyDate, err := timezone.Parse(constant.DateOnly, r.OccupancyDate)
	if err != nil {
		return NormalizedBookRoom{}, failure.BadRequestFromString("occupancy date must be a valid date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	if r.Days != nil && r.Hours != nil {
		return NormalizedBookRoom{}, failure.BadRequestFromString("provide either days or hours, not both") //nolint:wrapcheck
	}

	mode := model.ModeDays

	var durationValue int64

	switch {
	case r.Days != nil:
		durationValue = *r.Days
	case r.Hours != nil:
		mode = model.ModeHours
		durationValue = *r.Hours
	default:
		return NormalizedBookRoom{}, failure.BadRequestFromString("either days or hours is required") //nolint:wrapcheck
	}

	if durationValue <= 0 {
		return NormalizedBookRoom{}, failure.BadRequestFromString("duration must be a positive number") //nolint:wrapcheck
	}

	if r.AdvanceReceived.IsNegative() {
		return NormalizedBookRoom{}, failure.BadRequestFromString("advance received cannot be negative") //nolint:wrapcheck
	}

	return NormalizedBookRoom{
		CustomerID:      r.CustomerID,
		RoomID:          r.RoomID,
		OccupancyDate:   occupancyDate,
		Mode:            mode,
		DurationValue:   durationValue,
		AdvanceReceived: r.AdvanceReceived,
	}, nil
}

func (n *NormalizedBookRoom) ToModel(bookingID string, bookingDate time.Time, quote pricing.Quote) model.Booking {
	booking := model.Booking{
		ID:              bookingID,
		CustomerID:      n.CustomerID,
		RoomID:          n.RoomID,
		BookingDate:     bookingDate,
		OccupancyDate:   n.OccupancyDate,
		AdvanceReceived: n.AdvanceReceived,
		Tax:             quote.Tax,
		Housekeeping:    quote.Housekeeping,
		Misc:            quote.Misc,
		TotalAmount:     quote.Total,
	}

	if n.Mode == model.ModeHours {
		booking.Hours = n.DurationValue
	} else {
		booking.Days = n.DurationValue
	}

	return booking
}

// FormatDuration renders the billed duration of a booking, preferring days
// when both columns are zero-or-set ambiguously (they never should be).
func FormatDuration(days, hours int64) string {
	if days > 0 {
		return fmt.Sprintf("%d day(s)", days)
	}

	return fmt.Sprintf("%d hour(s)", hours)
}

type BookingConfirmation struct {
	BookingID       string          `json:"booking_id"`
	RoomNo          string          `json:"room_no"`
	OccupancyDate   string          `json:"occupancy_date"`
	Duration        string          `json:"duration"`
	BaseAmount      decimal.Decimal `json:"base_amount"`
	Tax             decimal.Decimal `json:"tax"`
	Housekeeping    decimal.Decimal `json:"housekeeping_charges"`
	Misc            decimal.Decimal `json:"misc_charges"`
	AdvanceReceived decimal.Decimal `json:"advance_received"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
}

func (b *BookingConfirmation) FromQuote(bookingID, roomNo string, normalized NormalizedBookRoom, quote pricing.Quote) {
	duration := fmt.Sprintf("%d day(s)", normalized.DurationValue)
	if normalized.Mode == model.ModeHours {
		duration = fmt.Sprintf("%d hour(s)", normalized.DurationValue)
	}

	b.BookingID = bookingID
	b.RoomNo = roomNo
	b.OccupancyDate = timezone.Format(normalized.OccupancyDate, constant.DateOnly)
	b.Duration = duration
	b.BaseAmount = quote.Base
	b.Tax = quote.Tax
	b.Housekeeping = quote.Housekeeping
	b.Misc = quote.Misc
	b.AdvanceReceived = quote.Advance
	b.TotalAmount = quote.Total
}

type BookingDetailResponse struct {
	BookingID       string             `json:"booking_id"`
	BookingDate     string             `json:"booking_date"`
	OccupancyDate   string             `json:"occupancy_date"`
	Duration        string             `json:"duration"`
	RoomNo          string             `json:"room_no"`
	Category        roomModel.Category `json:"category"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	CustomerAddress string             `json:"customer_address"`
	AdvanceReceived decimal.Decimal    `json:"advance_received"`
	Tax             decimal.Decimal    `json:"tax"`
	Housekeeping    decimal.Decimal    `json:"housekeeping_charges"`
	Misc            decimal.Decimal    `json:"misc_charges"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
}

func (r *BookingDetailResponse) FromModel(detail model.BookingDetail) {
	r.BookingID = detail.ID
	r.BookingDate = timezone.Format(detail.BookingDate, constant.DateOnly)
	r.OccupancyDate = timezone.Format(detail.OccupancyDate, constant.DateOnly)
	r.Duration = FormatDuration(detail.Days, detail.Hours)
	r.RoomNo = detail.RoomNo
	r.Category = detail.Category
	r.CustomerName = detail.CustomerName
	r.CustomerEmail = detail.CustomerEmail
	r.CustomerPhone = detail.CustomerPhone
	r.CustomerAddress = detail.CustomerAddress
	r.AdvanceReceived = detail.AdvanceReceived
	r.Tax = detail.Tax
	r.Housekeeping = detail.Housekeeping
	r.Misc = detail.Misc
	r.TotalAmount = detail.TotalAmount
}

type OccupancyRecordResponse struct {
	BookingID     string             `json:"booking_id"`
	RoomNo        string             `json:"room_no"`
	Category      roomModel.Category `json:"category"`
	OccupancyDate string             `json:"occupancy_date"`
	Duration      string             `json:"duration"`
}

func (r *OccupancyRecordResponse) FromModel(record model.OccupancyRecord) {
	r.BookingID = record.BookingID
	r.RoomNo = record.RoomNo
	r.Category = record.Category
	r.OccupancyDate = timezone.Format(record.OccupancyDate, constant.DateOnly)
	r.Duration = FormatDuration(record.Days, record.Hours)
}

type GetOccupancyResponse struct {
	Records []OccupancyRecordResponse `json:"records"`
}

func (r *GetOccupancyResponse) FromModels(models []model.OccupancyRecord) {
	r.Records = make([]OccupancyRecordResponse, len(models))
	for i, mod := range models {
		r.Records[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the broker when a booking is
// confirmed or cancelled.
type BookingEvent struct {
	BookingID     string          `json:"booking_id"`
	RoomID        int64           `json:"room_id"`
	CustomerID    int64           `json:"customer_id"`
	OccupancyDate string          `json:"occupancy_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}
