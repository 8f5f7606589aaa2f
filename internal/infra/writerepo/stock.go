package writerepo

import (
	"context"
	"time"

	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

type StockRepository struct {
	db db.DBTX
}

func NewStockRepository(db db.DBTX) *StockRepository {
	return &StockRepository{db: db}
}

const decrementStock = `
UPDATE stock_levels
SET remaining = remaining - $3
WHERE item_id = $1 AND on_date = $2 AND remaining >= $3
`

// Decrement takes qty units out of the item's stock for the date. The
// conditional WHERE keeps the row from going negative under concurrent
// orders; zero rows affected means not enough stock.
func (r *StockRepository) Decrement(ctx context.Context, tx db.DBTX, itemID uuid.UUID, date wallclock.Date, qty int) error {
	tag, err := tx.Exec(ctx, decrementStock, itemID, date.Time(time.UTC), qty)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("not enough stock remaining", nil, infra.KindConflict)
	}
	return nil
}

const incrementStock = `
UPDATE stock_levels
SET remaining = remaining + $3
WHERE item_id = $1 AND on_date = $2
`

func (r *StockRepository) Increment(ctx context.Context, tx db.DBTX, itemID uuid.UUID, date wallclock.Date, qty int) error {
	_, err := tx.Exec(ctx, incrementStock, itemID, date.Time(time.UTC), qty)
	if err != nil {
		return infra.WrapRepoErr("failed to increment stock", err)
	}
	return nil
}

const upsertStockLevel = `
INSERT INTO stock_levels (item_id, on_date, remaining)
VALUES ($1, $2, $3)
ON CONFLICT (item_id, on_date) DO UPDATE SET remaining = EXCLUDED.remaining
`

func (r *StockRepository) SetLevel(ctx context.Context, itemID uuid.UUID, date wallclock.Date, remaining int) error {
	_, err := r.db.Exec(ctx, upsertStockLevel, itemID, date.Time(time.UTC), remaining)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("stock level references missing item", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to set stock level", err)
	}
	return nil
}
