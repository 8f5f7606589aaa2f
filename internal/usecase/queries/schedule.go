package queries

import (
	"context"

	"github.com/google/uuid"

	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/errs"
	"takeout-api/internal/pkg/wallclock"
)

var ErrSpecialScheduleNotFound = errs.New("special schedule not found")

type ScheduleQueries interface {
	ListBusinessHours(ctx context.Context) ([]*BusinessHourView, error)
	ListSpecialSchedules(ctx context.Context, from, to wallclock.Date) ([]*SpecialScheduleView, error)
	GetSpecialSchedule(ctx context.Context, id uuid.UUID) (*SpecialScheduleView, error)
}

type ScheduleReadStore interface {
	FindBusinessHours(ctx context.Context) ([]*BusinessHourView, error)
	FindSpecialSchedules(ctx context.Context, from, to wallclock.Date) ([]*SpecialScheduleView, error)
	FindSpecialScheduleByID(ctx context.Context, id uuid.UUID) (*SpecialScheduleView, error)
}

type scheduleQueriesImpl struct {
	readStore ScheduleReadStore
}

func NewScheduleQueries(readStore ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{
		readStore: readStore,
	}
}

func (q *scheduleQueriesImpl) ListBusinessHours(ctx context.Context) ([]*BusinessHourView, error) {
	return q.readStore.FindBusinessHours(ctx)
}

func (q *scheduleQueriesImpl) ListSpecialSchedules(ctx context.Context, from, to wallclock.Date) ([]*SpecialScheduleView, error) {
	return q.readStore.FindSpecialSchedules(ctx, from, to)
}

func (q *scheduleQueriesImpl) GetSpecialSchedule(ctx context.Context, id uuid.UUID) (*SpecialScheduleView, error) {
	special, err := q.readStore.FindSpecialScheduleByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpecialScheduleNotFound
		}
		return nil, err
	}
	return special, nil
}
