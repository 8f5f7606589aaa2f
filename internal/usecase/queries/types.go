package queries

import (
	"time"

	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type OrderLineOptionView struct {
	OptionID  uuid.UUID `json:"option_id"`
	Name      string    `json:"name"`
	UnitPrice int       `json:"unit_price"`
}

type OrderLineView struct {
	ItemID    uuid.UUID             `json:"item_id"`
	Name      string                `json:"name"`
	Kind      string                `json:"kind"`
	UnitPrice int                   `json:"unit_price"`
	Quantity  int                   `json:"quantity"`
	Subtotal  int                   `json:"subtotal"`
	Options   []OrderLineOptionView `json:"options,omitempty"`
}

type OrderView struct {
	ID           uuid.UUID           `json:"id"`
	OrderNumber  int64               `json:"order_number"`
	UserID       uuid.UUID           `json:"user_id"`
	PickupDate   wallclock.Date      `json:"pickup_date"`
	PickupTime   wallclock.TimeOfDay `json:"pickup_time"`
	HourType     string              `json:"hour_type"`
	Status       string              `json:"status"`
	Total        int                 `json:"total"`
	ContactName  string              `json:"contact_name"`
	ContactPhone string              `json:"contact_phone"`
	ContactEmail string              `json:"contact_email,omitempty"`
	Lines        []OrderLineView     `json:"lines"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type OrderListItem struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber int64               `json:"order_number"`
	PickupDate  wallclock.Date      `json:"pickup_date"`
	PickupTime  wallclock.TimeOfDay `json:"pickup_time"`
	HourType    string              `json:"hour_type"`
	Status      string              `json:"status"`
	Total       int                 `json:"total"`
	ItemCount   int                 `json:"item_count"`
	CreatedAt   time.Time           `json:"created_at"`
}

type DailyStatsView struct {
	Date       wallclock.Date `json:"date"`
	OrderCount int            `json:"order_count"`
	ItemCount  int            `json:"item_count"`
	SalesTotal int            `json:"sales_total"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

type OptionView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	UnitPrice int       `json:"unit_price"`
}

type ItemView struct {
	ID          uuid.UUID    `json:"id"`
	CategoryID  uuid.UUID    `json:"category_id"`
	Name        string       `json:"name"`
	Kind        string       `json:"kind"`
	UnitPrice   int          `json:"unit_price"`
	ImageRef    string       `json:"image_ref,omitempty"`
	Note        string       `json:"note,omitempty"`
	MaxPerOrder int          `json:"max_per_order"`
	IsActive    bool         `json:"is_active"`
	Options     []OptionView `json:"options"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CategoryView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	SortPriority int       `json:"sort_priority"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BusinessHourView struct {
	ID        uuid.UUID           `json:"id"`
	Weekday   time.Weekday        `json:"weekday"`
	Label     string              `json:"label"`
	Start     wallclock.TimeOfDay `json:"start"`
	End       wallclock.TimeOfDay `json:"end"`
	IsActive  bool                `json:"is_active"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type SpecialScheduleBlockView struct {
	Label string              `json:"label"`
	Start wallclock.TimeOfDay `json:"start"`
	End   wallclock.TimeOfDay `json:"end"`
}

type SpecialScheduleView struct {
	ID        uuid.UUID                  `json:"id"`
	Date      wallclock.Date             `json:"date"`
	IsClosed  bool                       `json:"is_closed"`
	Note      string                     `json:"note,omitempty"`
	Blocks    []SpecialScheduleBlockView `json:"blocks"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// StockLevelRow is the remaining stock for one item on one date.
type StockLevelRow struct {
	ItemID    uuid.UUID
	Date      wallclock.Date
	Remaining int
}
