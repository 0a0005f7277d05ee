package model

import "github.com/shopspring/decimal"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldRoomNo       = "room_no"
	FieldCategory     = "category"
	FieldPricePerDay  = "price_per_day"
	FieldPricePerHour = "price_per_hour"
	FieldOccupied     = "is_occupied"
)

type Category string

const (
	CategorySingle         Category = "Single"
	CategoryDouble         Category = "Double"
	CategorySuite          Category = "Suite"
	CategoryConventionHall Category = "Convention Hall"
	CategoryBallroom       Category = "Ballroom"
)

func Categories() []Category {
	return []Category{
		CategorySingle,
		CategoryDouble,
		CategorySuite,
		CategoryConventionHall,
		CategoryBallroom,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategorySingle, CategoryDouble, CategorySuite, CategoryConventionHall, CategoryBallroom:
		return true
	}

	return false
}

// IsHourly reports whether rooms of this category are billed by the hour.
// Convention halls and ballrooms are hourly; every other category is daily.
func (c Category) IsHourly() bool {
	return c == CategoryConventionHall || c == CategoryBallroom
}

type Room struct {
	ID           int64           `db:"id"`
	RoomNo       string          `db:"room_no"`
	Category     Category        `db:"category"`
	PricePerDay  decimal.Decimal `db:"price_per_day"`
	PricePerHour decimal.Decimal `db:"price_per_hour"`
	Occupied     bool            `db:"is_occupied"`
}
