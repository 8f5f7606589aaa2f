package response

import (
	"time"

	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderLineOptionResponse struct {
	OptionID  uuid.UUID `json:"option_id"`
	Name      string    `json:"name"`
	UnitPrice int       `json:"unit_price"`
}

type OrderLineResponse struct {
	ItemID    uuid.UUID                 `json:"item_id"`
	Name      string                    `json:"name"`
	Kind      string                    `json:"kind"`
	UnitPrice int                       `json:"unit_price"`
	Quantity  int                       `json:"quantity"`
	Subtotal  int                       `json:"subtotal"`
	Options   []OrderLineOptionResponse `json:"options,omitempty"`
}

type OrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	OrderNumber  int64               `json:"order_number"`
	PickupDate   wallclock.Date      `json:"pickup_date"`
	PickupTime   wallclock.TimeOfDay `json:"pickup_time"`
	HourType     string              `json:"hour_type"`
	Status       string              `json:"status"`
	Total        int                 `json:"total"`
	ContactName  string              `json:"contact_name"`
	ContactPhone string              `json:"contact_phone"`
	ContactEmail string              `json:"contact_email,omitempty"`
	Lines        []OrderLineResponse `json:"lines"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type OrderListResponse struct {
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

type DailyStatsResponse struct {
	Date       wallclock.Date `json:"date"`
	OrderCount int            `json:"order_count"`
	ItemCount  int            `json:"item_count"`
	SalesTotal int            `json:"sales_total"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	resp := &OrderResponse{
		ID:           v.ID,
		OrderNumber:  v.OrderNumber,
		PickupDate:   v.PickupDate,
		PickupTime:   v.PickupTime,
		HourType:     v.HourType,
		Status:       v.Status,
		Total:        v.Total,
		ContactName:  v.ContactName,
		ContactPhone: v.ContactPhone,
		ContactEmail: v.ContactEmail,
		Lines:        make([]OrderLineResponse, 0, len(v.Lines)),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	for _, l := range v.Lines {
		lr := OrderLineResponse{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Kind:      l.Kind,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal,
		}
		for _, o := range l.Options {
			lr.Options = append(lr.Options, OrderLineOptionResponse{
				OptionID:  o.OptionID,
				Name:      o.Name,
				UnitPrice: o.UnitPrice,
			})
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}

func FromOrderListItem(v *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:          v.ID,
		OrderNumber: v.OrderNumber,
		PickupDate:  v.PickupDate,
		PickupTime:  v.PickupTime,
		HourType:    v.HourType,
		Status:      v.Status,
		Total:       v.Total,
		ItemCount:   v.ItemCount,
		CreatedAt:   v.CreatedAt,
	}
}

func FromDailyStatsView(v *queries.DailyStatsView) *DailyStatsResponse {
	return &DailyStatsResponse{
		Date:       v.Date,
		OrderCount: v.OrderCount,
		ItemCount:  v.ItemCount,
		SalesTotal: v.SalesTotal,
	}
}
