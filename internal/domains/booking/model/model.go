package model

import (
	"time"

	roomModel "innkeep/internal/domains/room/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldCustomerID      = "customer_id"
	FieldRoomID          = "room_id"
	FieldBookingDate     = "booking_date"
	FieldOccupancyDate   = "occupancy_date"
	FieldDays            = "no_of_days"
	FieldHours           = "no_of_hours"
	FieldAdvanceReceived = "advance_received"
	FieldTax             = "tax"
	FieldHousekeeping    = "housekeeping_charges"
	FieldMisc            = "misc_charges"
	FieldTotalAmount     = "total_amount"
)

// DurationMode selects whether a booking is billed per day or per hour.
// Exactly one applies to a booking; the other duration column stays zero.
type DurationMode string

const (
	ModeDays  DurationMode = "days"
	ModeHours DurationMode = "hours"
)

type Booking struct {
	ID              string          `db:"id"`
	CustomerID      int64           `db:"customer_id"`
	RoomID          int64           `db:"room_id"`
	BookingDate     time.Time       `db:"booking_date"`
	OccupancyDate   time.Time       `db:"occupancy_date"`
	Days            int64           `db:"no_of_days"`
	Hours           int64           `db:"no_of_hours"`
	AdvanceReceived decimal.Decimal `db:"advance_received"`
	Tax             decimal.Decimal `db:"tax"`
	Housekeeping    decimal.Decimal `db:"housekeeping_charges"`
	Misc            decimal.Decimal `db:"misc_charges"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
}

// BookingDetail is the read model behind the booking search: one row joining
// the booking with its room and customer.
type BookingDetail struct {
	ID              string             `db:"id"`
	BookingDate     time.Time          `db:"booking_date"`
	OccupancyDate   time.Time          `db:"occupancy_date"`
	Days            int64              `db:"no_of_days"`
	Hours           int64              `db:"no_of_hours"`
	AdvanceReceived decimal.Decimal    `db:"advance_received"`
	Tax             decimal.Decimal    `db:"tax"`
	Housekeeping    decimal.Decimal    `db:"housekeeping_charges"`
	Misc            decimal.Decimal    `db:"misc_charges"`
	TotalAmount     decimal.Decimal    `db:"total_amount"`
	RoomID          int64              `db:"room_id"`
	RoomNo          string             `db:"room_no"          table:"rooms"`
	Category        roomModel.Category `db:"category"         table:"rooms"`
	CustomerID      int64              `db:"customer_id"`
	CustomerName    string             `db:"customer_name"    table:"customers" column:"name"`
	CustomerEmail   string             `db:"customer_email"   table:"customers" column:"email"`
	CustomerPhone   string             `db:"customer_phone"   table:"customers" column:"phone"`
	CustomerAddress string             `db:"customer_address" table:"customers" column:"address"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id JOIN customers ON customers.id = bookings.customer_id"
}

// OccupancyRecord is one row of the occupancy window report.
type OccupancyRecord struct {
	BookingID     string             `db:"id"`
	OccupancyDate time.Time          `db:"occupancy_date"`
	Days          int64              `db:"no_of_days"`
	Hours         int64              `db:"no_of_hours"`
	RoomNo        string             `db:"room_no"  table:"rooms"`
	Category      roomModel.Category `db:"category" table:"rooms"`
}

func (OccupancyRecord) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id"
}
