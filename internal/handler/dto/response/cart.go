package response

import (
	"takeout-api/internal/domain/flow"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

type CartOptionResponse struct {
	OptionID  uuid.UUID `json:"option_id"`
	Name      string    `json:"name"`
	UnitPrice int       `json:"unit_price"`
}

type CartLineResponse struct {
	ItemID    uuid.UUID            `json:"item_id"`
	Name      string               `json:"name"`
	Kind      string               `json:"kind"`
	UnitPrice int                  `json:"unit_price"`
	Quantity  int                  `json:"quantity"`
	Options   []CartOptionResponse `json:"options,omitempty"`
	Subtotal  int                  `json:"subtotal"`
}

type PickupResponse struct {
	Date wallclock.Date      `json:"date"`
	Time wallclock.TimeOfDay `json:"time"`
}

type CartResponse struct {
	Step      string             `json:"step"`
	Pickup    *PickupResponse    `json:"pickup,omitempty"`
	Lines     []CartLineResponse `json:"lines"`
	Total     int                `json:"total"`
	ItemCount int                `json:"item_count"`
}

func FromWizard(w *flow.Wizard) *CartResponse {
	resp := &CartResponse{
		Step:      string(w.Step),
		Lines:     make([]CartLineResponse, 0, len(w.Cart.Lines)),
		Total:     w.Cart.Total(),
		ItemCount: w.Cart.ItemCount(),
	}

	if !w.Pickup.IsZero() {
		resp.Pickup = &PickupResponse{Date: w.Pickup.Date, Time: w.Pickup.Time}
	}

	for _, line := range w.Cart.Lines {
		lr := CartLineResponse{
			ItemID:    line.Item.ItemID,
			Name:      line.Item.Name,
			Kind:      line.Item.Kind.String(),
			UnitPrice: line.Item.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		}
		for _, o := range line.Options {
			lr.Options = append(lr.Options, CartOptionResponse{
				OptionID:  o.OptionID,
				Name:      o.Name,
				UnitPrice: o.UnitPrice,
			})
		}
		resp.Lines = append(resp.Lines, lr)
	}
	return resp
}
