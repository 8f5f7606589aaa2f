package queries

import (
	"context"

	"github.com/google/uuid"

	"takeout-api/internal/domain/user"
	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/errs"
	"takeout-api/internal/pkg/wallclock"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrOrderAccessDenied = errs.New("order access denied")
)

type OrderQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*OrderView, error)
	// GetByIDSystem skips the ownership check. Reserved for internal flows
	// such as idempotent replay and the read-after-write on placement.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	ListByPickupDate(ctx context.Context, date wallclock.Date) ([]*OrderView, error)
	DailyStats(ctx context.Context, from, to wallclock.Date) ([]*DailyStatsView, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	FindByPickupDate(ctx context.Context, date wallclock.Date) ([]*OrderView, error)
	AggregateDaily(ctx context.Context, from, to wallclock.Date) ([]*DailyStatsView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{
		readStore: readStore,
	}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*OrderView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID && actorRole != user.RoleAdmin {
		return nil, ErrOrderAccessDenied
	}
	return view, nil
}

func (q *orderQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

func (q *orderQueriesImpl) ListByPickupDate(ctx context.Context, date wallclock.Date) ([]*OrderView, error) {
	return q.readStore.FindByPickupDate(ctx, date)
}

func (q *orderQueriesImpl) DailyStats(ctx context.Context, from, to wallclock.Date) ([]*DailyStatsView, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	return q.readStore.AggregateDaily(ctx, from, to)
}
