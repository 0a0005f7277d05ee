package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/room/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
	"slices"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.Room, error)
	SetOccupiedTx(ctx context.Context, tx *sqlx.Tx, id int64, occupied bool) error
	GetAllSortedByRate(ctx context.Context) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	repo := gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel)

	// id is assigned by the database sequence.
	repo.InsertColumns = slices.DeleteFunc(repo.InsertColumns, func(col string) bool {
		return col == model.FieldID
	})

	return &repositoryImpl{
		Repository: repo,
		db:         db,
		otel:       otel,
	}
}

// GetForUpdateTx loads a room inside tx while holding its row lock, so the
// occupied check and the later flip cannot interleave with another booking.
// A missing room is reported as a zero model, not an error.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id int64) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetForUpdateTx")
	defer scope.End()

	query := "SELECT id, room_no, category, price_per_day, price_per_hour, is_occupied FROM rooms WHERE id = $1 FOR UPDATE"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var room model.Room

	err := tx.GetContext(ctx, &room, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Room{}, fmt.Errorf("failed to lock room row: %w", err)
	}

	return room, nil
}

func (repo *repositoryImpl) SetOccupiedTx(ctx context.Context, tx *sqlx.Tx, id int64, occupied bool) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.SetOccupiedTx")
	defer scope.End()

	query := "UPDATE rooms SET is_occupied = $1 WHERE id = $2"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := tx.ExecContext(ctx, query, occupied, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set room occupied flag: %w", err)
	}

	return nil
}

// GetAllSortedByRate returns every room ordered ascending by daily rate with
// the hourly rate as tie-break.
func (repo *repositoryImpl) GetAllSortedByRate(ctx context.Context) ([]model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAllSortedByRate")
	defer scope.End()

	query := "SELECT id, room_no, category, price_per_day, price_per_hour, is_occupied FROM rooms ORDER BY price_per_day ASC, price_per_hour ASC"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rooms []model.Room

	err := repo.db.Read.SelectContext(ctx, &rooms, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get rooms sorted by rate: %w", err)
	}

	return rooms, nil
}
