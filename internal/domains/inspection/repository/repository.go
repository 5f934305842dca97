package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"riminspect/infras/otel"
	"riminspect/infras/postgres"
	"riminspect/internal/domains/inspection/model"
	gDto "riminspect/shared/dto"
	gRepo "riminspect/shared/repository"
)

type Inspection interface {
	Insert(ctx context.Context, model model.Inspection) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Inspection, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Inspection, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Inspection]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inspection {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Inspection](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
