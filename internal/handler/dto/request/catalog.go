package request

import (
	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/catalog"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Title        string `json:"title" binding:"required,max=100"`
	SortPriority int    `json:"sort_priority" binding:"gte=0"`
}

func (r CreateCategoryRequest) ToDomain() (*catalog.Category, error) {
	return catalog.NewCategory(r.Title, r.SortPriority)
}

type UpdateCategoryRequest struct {
	Title        string `json:"title" binding:"required,max=100"`
	SortPriority int    `json:"sort_priority" binding:"gte=0"`
	IsActive     bool   `json:"is_active"`
}

type OptionPayload struct {
	Name      string `json:"name" binding:"required,max=100"`
	Note      string `json:"note,omitempty" binding:"max=500"`
	UnitPrice int    `json:"unit_price" binding:"gte=0"`
}

type CreateItemRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" binding:"required"`
	Name        string          `json:"name" binding:"required,max=100"`
	Kind        string          `json:"kind" binding:"required,oneof=food stock"`
	UnitPrice   int             `json:"unit_price" binding:"gte=0"`
	ImageRef    string          `json:"image_ref,omitempty"`
	Note        string          `json:"note,omitempty" binding:"max=500"`
	MaxPerOrder int             `json:"max_per_order" binding:"required,gte=1"`
	Options     []OptionPayload `json:"options"`
}

func (r CreateItemRequest) ToDomain() (*catalog.Item, error) {
	options, err := buildOptions(r.Options)
	if err != nil {
		return nil, err
	}
	return catalog.NewItem(r.Name, availability.ItemKind(r.Kind), r.UnitPrice, r.ImageRef, r.Note, r.MaxPerOrder, options)
}

type UpdateItemRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Kind        string          `json:"kind" binding:"required,oneof=food stock"`
	UnitPrice   int             `json:"unit_price" binding:"gte=0"`
	ImageRef    string          `json:"image_ref,omitempty"`
	Note        string          `json:"note,omitempty" binding:"max=500"`
	MaxPerOrder int             `json:"max_per_order" binding:"required,gte=1"`
	IsActive    bool            `json:"is_active"`
	Options     []OptionPayload `json:"options"`
}

func (r UpdateItemRequest) Apply(item *catalog.Item) error {
	options, err := buildOptions(r.Options)
	if err != nil {
		return err
	}
	return item.Update(r.Name, availability.ItemKind(r.Kind), r.UnitPrice, r.ImageRef, r.Note, r.MaxPerOrder, r.IsActive, options)
}

type SetStockLevelRequest struct {
	Date      string `json:"date" binding:"required"`
	Remaining int    `json:"remaining" binding:"gte=0"`
}

func (r SetStockLevelRequest) ParseDate() (wallclock.Date, error) {
	return wallclock.ParseDate(r.Date)
}

func buildOptions(payloads []OptionPayload) ([]catalog.Option, error) {
	options := make([]catalog.Option, 0, len(payloads))
	for _, p := range payloads {
		option, err := catalog.NewOption(p.Name, p.Note, p.UnitPrice)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}
