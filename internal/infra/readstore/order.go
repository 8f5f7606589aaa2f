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

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

const findOrderByID = `
SELECT id, order_number, user_id, pickup_date, pickup_minutes, hour_type, status,
       total, contact_name, contact_phone, contact_email, created_at, updated_at
FROM orders
WHERE id = $1
`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, findOrderByID, id)
	view, err := scanOrderView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	if err = r.attachLines(ctx, []*queries.OrderView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

const findOrdersByUserID = `
SELECT o.id, o.order_number, o.pickup_date, o.pickup_minutes, o.hour_type, o.status, o.total,
       COALESCE(SUM(l.quantity), 0) AS item_count, o.created_at
FROM orders o
LEFT JOIN order_lines l ON l.order_id = o.id
WHERE o.user_id = $1
GROUP BY o.id
ORDER BY o.created_at DESC
`

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, findOrdersByUserID, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	defer rows.Close()

	var items []*queries.OrderListItem
	for rows.Next() {
		var (
			v             queries.OrderListItem
			pickupDate    time.Time
			pickupMinutes int16
			itemCount     int64
		)
		if err = rows.Scan(
			&v.ID, &v.OrderNumber, &pickupDate, &pickupMinutes, &v.HourType,
			&v.Status, &v.Total, &itemCount, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		v.PickupDate = wallclock.DateOf(pickupDate)
		v.PickupTime = wallclock.TimeOfDay(pickupMinutes)
		v.ItemCount = int(itemCount)
		items = append(items, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by user", err)
	}
	return items, nil
}

const findOrdersByPickupDate = `
SELECT id, order_number, user_id, pickup_date, pickup_minutes, hour_type, status,
       total, contact_name, contact_phone, contact_email, created_at, updated_at
FROM orders
WHERE pickup_date = $1
ORDER BY pickup_minutes, order_number
`

func (r *OrderReadStore) FindByPickupDate(ctx context.Context, date wallclock.Date) ([]*queries.OrderView, error) {
	rows, err := r.db.Query(ctx, findOrdersByPickupDate, date.Time(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by pickup date", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan order", scanErr)
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by pickup date", err)
	}

	if err = r.attachLines(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

const aggregateDailyStats = `
SELECT o.pickup_date,
       COUNT(*)                        AS order_count,
       COALESCE(SUM(ic.item_count), 0) AS item_count,
       COALESCE(SUM(o.total), 0)       AS sales_total
FROM orders o
LEFT JOIN (
    SELECT order_id, SUM(quantity) AS item_count
    FROM order_lines
    GROUP BY order_id
) ic ON ic.order_id = o.id
WHERE o.pickup_date BETWEEN $1 AND $2
  AND o.status <> 'canceled'
GROUP BY o.pickup_date
ORDER BY o.pickup_date
`

func (r *OrderReadStore) AggregateDaily(ctx context.Context, from, to wallclock.Date) ([]*queries.DailyStatsView, error) {
	rows, err := r.db.Query(ctx, aggregateDailyStats, from.Time(time.UTC), to.Time(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily stats", err)
	}
	defer rows.Close()

	var stats []*queries.DailyStatsView
	for rows.Next() {
		var (
			v          queries.DailyStatsView
			pickupDate time.Time
			orderCount int64
			itemCount  int64
			salesTotal int64
		)
		if err = rows.Scan(&pickupDate, &orderCount, &itemCount, &salesTotal); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily stats", err)
		}
		v.Date = wallclock.DateOf(pickupDate)
		v.OrderCount = int(orderCount)
		v.ItemCount = int(itemCount)
		v.SalesTotal = int(salesTotal)
		stats = append(stats, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily stats", err)
	}
	return stats, nil
}

func scanOrderView(row pgx.Row) (*queries.OrderView, error) {
	var (
		v             queries.OrderView
		pickupDate    time.Time
		pickupMinutes int16
	)
	err := row.Scan(
		&v.ID, &v.OrderNumber, &v.UserID, &pickupDate, &pickupMinutes, &v.HourType,
		&v.Status, &v.Total, &v.ContactName, &v.ContactPhone, &v.ContactEmail,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.PickupDate = wallclock.DateOf(pickupDate)
	v.PickupTime = wallclock.TimeOfDay(pickupMinutes)
	return &v, nil
}

const findLinesByOrderIDs = `
SELECT l.order_id, l.id, l.item_id, l.name, l.kind, l.unit_price, l.quantity,
       o.option_id, o.name, o.unit_price
FROM order_lines l
LEFT JOIN order_line_options o ON o.order_line_id = l.id
WHERE l.order_id = ANY($1)
ORDER BY l.order_id, l.position, o.position
`

func (r *OrderReadStore) attachLines(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*queries.OrderView, len(views))
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		v.Lines = []queries.OrderLineView{}
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}

	rows, err := r.db.Query(ctx, findLinesByOrderIDs, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	lastLineID := uuid.Nil
	for rows.Next() {
		var (
			orderID, lineID uuid.UUID
			line            queries.OrderLineView
			optID           *uuid.UUID
			optName         *string
			optPrice        *int
		)
		if err = rows.Scan(
			&orderID, &lineID, &line.ItemID, &line.Name, &line.Kind,
			&line.UnitPrice, &line.Quantity, &optID, &optName, &optPrice,
		); err != nil {
			return infra.WrapRepoErr("failed to scan order line", err)
		}

		view, ok := byID[orderID]
		if !ok {
			continue
		}
		if lineID != lastLineID {
			view.Lines = append(view.Lines, line)
			lastLineID = lineID
		}
		if optID != nil {
			current := &view.Lines[len(view.Lines)-1]
			current.Options = append(current.Options, queries.OrderLineOptionView{
				OptionID:  *optID,
				Name:      *optName,
				UnitPrice: *optPrice,
			})
		}
	}
	if err = rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to list order lines", err)
	}

	for _, v := range views {
		for i := range v.Lines {
			line := &v.Lines[i]
			perUnit := line.UnitPrice
			for _, opt := range line.Options {
				perUnit += opt.UnitPrice
			}
			line.Subtotal = perUnit * line.Quantity
		}
	}
	return nil
}
