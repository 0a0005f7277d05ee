package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/internal/domains/customer/model"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/logger"
	gRepo "innkeep/shared/repository"
)

type Customer interface {
	InsertReturningID(ctx context.Context, model model.Customer) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	repo := gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel)

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

// InsertReturningID inserts the customer and reports the id the sequence
// assigned, so callers can reference the row immediately.
func (repo *repositoryImpl) InsertReturningID(ctx context.Context, customer model.Customer) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.InsertReturningID")
	defer scope.End()

	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var id int64

	err = prepare.GetContext(ctx, &id, customer)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return id, nil
}
