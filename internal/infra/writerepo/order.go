package writerepo

import (
	"context"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/order"
	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const insertOrder = `
INSERT INTO orders (id, user_id, pickup_date, pickup_minutes, hour_type, status,
                    total, contact_name, contact_phone, contact_email)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

const insertOrderLine = `
INSERT INTO order_lines (id, order_id, position, item_id, name, kind, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const insertOrderLineOption = `
INSERT INTO order_line_options (id, order_line_id, position, option_id, name, unit_price)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, ord *order.Order) (uuid.UUID, error) {
	contact := ord.Contact()
	_, err := tx.Exec(ctx, insertOrder,
		ord.ID(), ord.UserID(), ord.PickupDate().Time(time.UTC), int16(ord.PickupTime()),
		ord.HourType(), ord.Status().String(), ord.Total(),
		contact.Name(), contact.Phone(), contact.Email(),
	)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("order references missing user", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for pos, line := range ord.Lines() {
		lineID := uuid.New()
		_, err = tx.Exec(ctx, insertOrderLine,
			lineID, ord.ID(), pos, line.ItemID(), line.Name(), line.Kind().String(),
			line.UnitPrice(), line.Quantity(),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order line", err)
		}

		for optPos, opt := range line.Options() {
			_, err = tx.Exec(ctx, insertOrderLineOption,
				uuid.New(), lineID, optPos, opt.OptionID(), opt.Name(), opt.UnitPrice(),
			)
			if err != nil {
				return uuid.Nil, infra.WrapRepoErr("failed to create order line option", err)
			}
		}
	}

	return ord.ID(), nil
}

const getOrderForUpdate = `
SELECT id, order_number, user_id, pickup_date, pickup_minutes, hour_type, status,
       total, contact_name, contact_phone, contact_email, created_at, updated_at
FROM orders
WHERE id = $1
FOR UPDATE
`

const getOrderLines = `
SELECT l.id, l.item_id, l.name, l.kind, l.unit_price, l.quantity
FROM order_lines l
WHERE l.order_id = $1
ORDER BY l.position
`

const getOrderLineOptions = `
SELECT option_id, name, unit_price
FROM order_line_options
WHERE order_line_id = $1
ORDER BY position
`

func (r *OrderRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error) {
	var (
		orderID       uuid.UUID
		orderNumber   int64
		userID        uuid.UUID
		pickupDate    time.Time
		pickupMinutes int16
		hourType      string
		status        string
		total         int
		contactName   string
		contactPhone  string
		contactEmail  string
		createdAt     time.Time
		updatedAt     time.Time
	)
	err := tx.QueryRow(ctx, getOrderForUpdate, id).Scan(
		&orderID, &orderNumber, &userID, &pickupDate, &pickupMinutes, &hourType,
		&status, &total, &contactName, &contactPhone, &contactEmail,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	lines, err := r.loadLines(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		orderID, orderNumber, userID,
		wallclock.DateOf(pickupDate), wallclock.TimeOfDay(pickupMinutes), hourType,
		order.Status(status), lines, total,
		order.ReconstructContact(contactName, contactPhone, contactEmail),
		createdAt, updatedAt,
	), nil
}

func (r *OrderRepository) loadLines(ctx context.Context, tx db.DBTX, orderID uuid.UUID) ([]order.Line, error) {
	rows, err := tx.Query(ctx, getOrderLines, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	defer rows.Close()

	type rawLine struct {
		lineID    uuid.UUID
		itemID    uuid.UUID
		name      string
		kind      string
		unitPrice int
		quantity  int
	}
	var raw []rawLine
	for rows.Next() {
		var l rawLine
		if err = rows.Scan(&l.lineID, &l.itemID, &l.name, &l.kind, &l.unitPrice, &l.quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		raw = append(raw, l)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list order lines", err)
	}
	rows.Close()

	lines := make([]order.Line, 0, len(raw))
	for _, l := range raw {
		options, optErr := r.loadLineOptions(ctx, tx, l.lineID)
		if optErr != nil {
			return nil, optErr
		}
		lines = append(lines, order.NewLine(
			l.itemID, l.name, availability.ItemKind(l.kind), l.unitPrice, l.quantity, options,
		))
	}
	return lines, nil
}

func (r *OrderRepository) loadLineOptions(ctx context.Context, tx db.DBTX, lineID uuid.UUID) ([]order.LineOption, error) {
	rows, err := tx.Query(ctx, getOrderLineOptions, lineID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order line options", err)
	}
	defer rows.Close()

	var options []order.LineOption
	for rows.Next() {
		var (
			optionID  uuid.UUID
			name      string
			unitPrice int
		)
		if err = rows.Scan(&optionID, &name, &unitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line option", err)
		}
		options = append(options, order.NewLineOption(optionID, name, unitPrice))
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list order line options", err)
	}
	return options, nil
}

const updateOrderStatus = `
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
`

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status) error {
	tag, err := tx.Exec(ctx, updateOrderStatus, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
