package response

import (
	"takeout-api/internal/domain/availability"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferedOptionResponse struct {
	OptionID  uuid.UUID `json:"option_id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	UnitPrice int       `json:"unit_price"`
}

type OfferedItemResponse struct {
	ItemID      uuid.UUID               `json:"item_id"`
	Name        string                  `json:"name"`
	Kind        string                  `json:"kind"`
	ImageRef    string                  `json:"image_ref,omitempty"`
	Note        string                  `json:"note,omitempty"`
	UnitPrice   int                     `json:"unit_price"`
	MaxQuantity int                     `json:"max_quantity"`
	Options     []OfferedOptionResponse `json:"options,omitempty"`
}

type OfferedCategoryResponse struct {
	CategoryID uuid.UUID             `json:"category_id"`
	Title      string                `json:"title"`
	Items      []OfferedItemResponse `json:"items"`
}

type WindowResponse struct {
	Date       wallclock.Date            `json:"date"`
	Start      wallclock.TimeOfDay       `json:"start"`
	End        wallclock.TimeOfDay       `json:"end"`
	HourType   string                    `json:"hour_type"`
	Categories []OfferedCategoryResponse `json:"categories"`
}

type SelectableDatesResponse struct {
	Dates []wallclock.Date `json:"dates"`
}

type WindowSlotsResponse struct {
	Date     wallclock.Date        `json:"date"`
	HourType string                `json:"hour_type"`
	Start    wallclock.TimeOfDay   `json:"start"`
	End      wallclock.TimeOfDay   `json:"end"`
	Times    []wallclock.TimeOfDay `json:"times"`
}

func FromWindow(w availability.Window) WindowResponse {
	resp := WindowResponse{
		Date:       w.Date,
		Start:      w.Start,
		End:        w.End,
		HourType:   w.HourType,
		Categories: make([]OfferedCategoryResponse, 0, len(w.Categories)),
	}
	for _, c := range w.Categories {
		cr := OfferedCategoryResponse{
			CategoryID: c.CategoryID,
			Title:      c.Title,
			Items:      make([]OfferedItemResponse, 0, len(c.Items)),
		}
		for _, i := range c.Items {
			ir := OfferedItemResponse{
				ItemID:      i.ItemID,
				Name:        i.Name,
				Kind:        i.Kind.String(),
				ImageRef:    i.ImageRef,
				Note:        i.Note,
				UnitPrice:   i.UnitPrice,
				MaxQuantity: i.MaxQuantity,
			}
			for _, o := range i.Options {
				ir.Options = append(ir.Options, OfferedOptionResponse{
					OptionID:  o.OptionID,
					Name:      o.Name,
					Note:      o.Note,
					UnitPrice: o.UnitPrice,
				})
			}
			cr.Items = append(cr.Items, ir)
		}
		resp.Categories = append(resp.Categories, cr)
	}
	return resp
}

func FromWindowSlotsView(v queries.WindowSlotsView) WindowSlotsResponse {
	return WindowSlotsResponse{
		Date:     v.Date,
		HourType: v.HourType,
		Start:    v.Start,
		End:      v.End,
		Times:    v.Times,
	}
}
