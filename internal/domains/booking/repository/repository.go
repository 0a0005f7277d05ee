package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gRepo "innkeep/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, id string) (model.BookingDetail, error)
	GetOccupiedBetween(ctx context.Context, start, end time.Time) ([]model.OccupancyRecord, error)
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	detail    gRepo.Repository[model.BookingDetail]
	occupancy gRepo.Repository[model.OccupancyRecord]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.BookingDetail]("booking_detail", model.TableName, model.FieldID, db, otel),
		occupancy:  gRepo.NewRepository[model.OccupancyRecord]("booking_occupancy", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetDetail loads one booking joined with its room and customer. A missing
// booking comes back as a zero model.
func (repo *repositoryImpl) GetDetail(ctx context.Context, id string) (model.BookingDetail, error) {
	return repo.detail.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
}

// GetOccupiedBetween lists bookings whose occupancy date falls inside the
// inclusive [start, end] window, earliest first.
func (repo *repositoryImpl) GetOccupiedBetween(ctx context.Context, start, end time.Time) ([]model.OccupancyRecord, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOccupancyDate,
				Value:    gDto.BetweenRange{From: start, To: end},
				Operator: gDto.FilterOperatorBetween,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldOccupancyDate,
		SortDir: gDto.SortDirAsc,
	}

	return repo.occupancy.GetAll(ctx, params, filter)
}

func (repo *repositoryImpl) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return repo.db.WithTransaction(ctx, fn) //nolint:wrapcheck
}
