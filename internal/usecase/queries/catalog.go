package queries

import (
	"context"

	"github.com/google/uuid"

	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/errs"
	"takeout-api/internal/pkg/wallclock"
)

var (
	ErrCategoryNotFound = errs.New("category not found")
	ErrItemNotFound     = errs.New("item not found")
)

type CatalogQueries interface {
	ListCategories(ctx context.Context, includeInactive bool) ([]*CategoryView, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	ListItems(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]*ItemView, error)
	GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error)
}

type CatalogReadStore interface {
	FindCategories(ctx context.Context, includeInactive bool) ([]*CategoryView, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	FindItems(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]*ItemView, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
}

// StockReadStore reports per-date remaining quantities for stock-kind items.
// Items without a row for a date have no stock on that date.
type StockReadStore interface {
	FindLevels(ctx context.Context, from, to wallclock.Date) ([]StockLevelRow, error)
	FindLevelsByItem(ctx context.Context, itemID uuid.UUID, from, to wallclock.Date) ([]StockLevelRow, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		readStore: readStore,
	}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context, includeInactive bool) ([]*CategoryView, error) {
	return q.readStore.FindCategories(ctx, includeInactive)
}

func (q *catalogQueriesImpl) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryView, error) {
	category, err := q.readStore.FindCategoryByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (q *catalogQueriesImpl) ListItems(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]*ItemView, error) {
	return q.readStore.FindItems(ctx, categoryID, includeInactive)
}

func (q *catalogQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	item, err := q.readStore.FindItemByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}
