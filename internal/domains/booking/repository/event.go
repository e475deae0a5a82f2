//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks
package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"

	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type TimelineEvent interface {
	Insert(ctx context.Context, model model.TimelineEvent) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.TimelineEvent) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.TimelineEvent) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimelineEvent, error)
}

type eventRepositoryImpl struct {
	gRepo.Repository[model.TimelineEvent]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTimelineEvent(db *postgres.Connection, otel otel.Otel) TimelineEvent {
	return &eventRepositoryImpl{
		Repository: gRepo.NewRepository[model.TimelineEvent](model.EventEntityName, model.EventTableName, model.EventFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
