package readstore

import (
	"context"
	"time"

	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type StockReadStore struct {
	db db.DBTX
}

func NewStockReadStore(db db.DBTX) *StockReadStore {
	return &StockReadStore{db: db}
}

const findStockLevels = `
SELECT item_id, on_date, remaining
FROM stock_levels
WHERE on_date BETWEEN $1 AND $2
`

func (r *StockReadStore) FindLevels(ctx context.Context, from, to wallclock.Date) ([]queries.StockLevelRow, error) {
	rows, err := r.db.Query(ctx, findStockLevels, from.Time(time.UTC), to.Time(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stock levels", err)
	}
	defer rows.Close()
	return scanStockLevels(rows)
}

const findStockLevelsByItem = `
SELECT item_id, on_date, remaining
FROM stock_levels
WHERE item_id = $1 AND on_date BETWEEN $2 AND $3
`

func (r *StockReadStore) FindLevelsByItem(ctx context.Context, itemID uuid.UUID, from, to wallclock.Date) ([]queries.StockLevelRow, error) {
	rows, err := r.db.Query(ctx, findStockLevelsByItem, itemID, from.Time(time.UTC), to.Time(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stock levels by item", err)
	}
	defer rows.Close()
	return scanStockLevels(rows)
}

func scanStockLevels(rows pgx.Rows) ([]queries.StockLevelRow, error) {
	var levels []queries.StockLevelRow
	for rows.Next() {
		var (
			row    queries.StockLevelRow
			onDate time.Time
		)
		if err := rows.Scan(&row.ItemID, &onDate, &row.Remaining); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stock level", err)
		}
		row.Date = wallclock.DateOf(onDate)
		levels = append(levels, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list stock levels", err)
	}
	return levels, nil
}
