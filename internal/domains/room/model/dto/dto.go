package dto

import (
	"innkeep/internal/domains/room/model"
	"innkeep/shared"

	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNo       string          `json:"room_no"        validate:"required,max=10"`
	Category     string          `json:"category"       validate:"required,oneof=Single Double Suite 'Convention Hall' Ballroom"`
	PricePerDay  decimal.Decimal `json:"price_per_day"  validate:"omitempty"`
	PricePerHour decimal.Decimal `json:"price_per_hour" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		RoomNo:       c.RoomNo,
		Category:     model.Category(c.Category),
		PricePerDay:  c.PricePerDay,
		PricePerHour: c.PricePerHour,
		Occupied:     false,
	}
}

type RoomResponse struct {
	ID           int64           `json:"id"`
	RoomNo       string          `json:"room_no"`
	Category     model.Category  `json:"category"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Occupied     bool            `json:"is_occupied"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.Category = model.Category
	r.PricePerDay = model.PricePerDay
	r.PricePerHour = model.PricePerHour
	r.Occupied = model.Occupied
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomRateResponse is the rate-card view used by the by-category and by-rate
// listings.
type RoomRateResponse struct {
	RoomNo       string          `json:"room_no"`
	Category     model.Category  `json:"category"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
}

func (r *RoomRateResponse) FromModel(model model.Room) {
	r.RoomNo = model.RoomNo
	r.Category = model.Category
	r.PricePerDay = model.PricePerDay
	r.PricePerHour = model.PricePerHour
}

type GetRoomRatesResponse struct {
	Rooms []RoomRateResponse `json:"rooms"`
}

func (r *GetRoomRatesResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomRateResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
