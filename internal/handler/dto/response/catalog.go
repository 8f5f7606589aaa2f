package response

import (
	"time"

	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OptionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	UnitPrice int       `json:"unit_price"`
}

type ItemResponse struct {
	ID          uuid.UUID        `json:"id"`
	CategoryID  uuid.UUID        `json:"category_id"`
	Name        string           `json:"name"`
	Kind        string           `json:"kind"`
	UnitPrice   int              `json:"unit_price"`
	ImageRef    string           `json:"image_ref,omitempty"`
	Note        string           `json:"note,omitempty"`
	MaxPerOrder int              `json:"max_per_order"`
	IsActive    bool             `json:"is_active"`
	Options     []OptionResponse `json:"options"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	SortPriority int       `json:"sort_priority"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	resp := &ItemResponse{
		ID:          v.ID,
		CategoryID:  v.CategoryID,
		Name:        v.Name,
		Kind:        v.Kind,
		UnitPrice:   v.UnitPrice,
		ImageRef:    v.ImageRef,
		Note:        v.Note,
		MaxPerOrder: v.MaxPerOrder,
		IsActive:    v.IsActive,
		Options:     make([]OptionResponse, 0, len(v.Options)),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	for _, o := range v.Options {
		resp.Options = append(resp.Options, OptionResponse{
			ID:        o.ID,
			Name:      o.Name,
			Note:      o.Note,
			UnitPrice: o.UnitPrice,
		})
	}
	return resp
}

func FromCategoryView(v *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:           v.ID,
		Title:        v.Title,
		SortPriority: v.SortPriority,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
