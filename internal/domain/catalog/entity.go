package catalog

import (
	"errors"
	"strings"
	"time"

	"takeout-api/internal/domain/availability"

	"github.com/google/uuid"
)

const (
	MaxNameLength = 100
	MaxNoteLength = 500
)

var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNameTooLong        = errors.New("name is too long")
	ErrNoteTooLong        = errors.New("note is too long")
	ErrInvalidKind        = errors.New("invalid item kind")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidMaxPerOrder = errors.New("max per order must be positive")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrNegativeStock      = errors.New("stock cannot be negative")
)

// Item is an orderable product in the shop catalog. MaxPerOrder caps a single
// order line; remaining stock for stock-kind items is tracked per date and
// folded in on the availability query side.
type Item struct {
	id          uuid.UUID
	name        string
	kind        availability.ItemKind
	unitPrice   int
	imageRef    string
	note        string
	maxPerOrder int
	isActive    bool
	options     []Option
	createdAt   time.Time
	updatedAt   time.Time
}

type Option struct {
	id        uuid.UUID
	name      string
	note      string
	unitPrice int
}

func NewItem(name string, kind availability.ItemKind, unitPrice int, imageRef, note string, maxPerOrder int, options []Option) (*Item, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if unitPrice < 0 {
		return nil, ErrNegativePrice
	}
	if maxPerOrder <= 0 {
		return nil, ErrInvalidMaxPerOrder
	}
	if len(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	return &Item{
		id:          uuid.New(),
		name:        name,
		kind:        kind,
		unitPrice:   unitPrice,
		imageRef:    imageRef,
		note:        note,
		maxPerOrder: maxPerOrder,
		isActive:    true,
		options:     options,
	}, nil
}

func ReconstructItem(id uuid.UUID, name string, kind availability.ItemKind, unitPrice int, imageRef, note string, maxPerOrder int, isActive bool, options []Option, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		name:        name,
		kind:        kind,
		unitPrice:   unitPrice,
		imageRef:    imageRef,
		note:        note,
		maxPerOrder: maxPerOrder,
		isActive:    isActive,
		options:     options,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the editable fields, re-running the creation validations.
func (i *Item) Update(name string, kind availability.ItemKind, unitPrice int, imageRef, note string, maxPerOrder int, isActive bool, options []Option) error {
	updated, err := NewItem(name, kind, unitPrice, imageRef, note, maxPerOrder, options)
	if err != nil {
		return err
	}

	i.name = updated.name
	i.kind = updated.kind
	i.unitPrice = updated.unitPrice
	i.imageRef = updated.imageRef
	i.note = updated.note
	i.maxPerOrder = updated.maxPerOrder
	i.isActive = isActive
	i.options = options
	return nil
}

func (i *Item) ID() uuid.UUID                { return i.id }
func (i *Item) Name() string                 { return i.name }
func (i *Item) Kind() availability.ItemKind  { return i.kind }
func (i *Item) UnitPrice() int               { return i.unitPrice }
func (i *Item) ImageRef() string             { return i.imageRef }
func (i *Item) Note() string                 { return i.note }
func (i *Item) MaxPerOrder() int             { return i.maxPerOrder }
func (i *Item) IsActive() bool               { return i.isActive }
func (i *Item) Options() []Option            { return i.options }
func (i *Item) CreatedAt() time.Time         { return i.createdAt }
func (i *Item) UpdatedAt() time.Time         { return i.updatedAt }

func NewOption(name, note string, unitPrice int) (Option, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return Option{}, err
	}
	if unitPrice < 0 {
		return Option{}, ErrNegativePrice
	}
	if len(note) > MaxNoteLength {
		return Option{}, ErrNoteTooLong
	}

	return Option{
		id:        uuid.New(),
		name:      name,
		note:      note,
		unitPrice: unitPrice,
	}, nil
}

func ReconstructOption(id uuid.UUID, name, note string, unitPrice int) Option {
	return Option{id: id, name: name, note: note, unitPrice: unitPrice}
}

func (o Option) ID() uuid.UUID  { return o.id }
func (o Option) Name() string   { return o.name }
func (o Option) Note() string   { return o.note }
func (o Option) UnitPrice() int { return o.unitPrice }

// Category groups items for display. SortPriority orders ascending; ties keep
// insertion order.
type Category struct {
	id           uuid.UUID
	title        string
	sortPriority int
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCategory(title string, sortPriority int) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	return &Category{
		id:           uuid.New(),
		title:        title,
		sortPriority: sortPriority,
		isActive:     true,
	}, nil
}

func ReconstructCategory(id uuid.UUID, title string, sortPriority int, isActive bool, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:           id,
		title:        title,
		sortPriority: sortPriority,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Category) Update(title string, sortPriority int, isActive bool) error {
	updated, err := NewCategory(title, sortPriority)
	if err != nil {
		return err
	}

	c.title = updated.title
	c.sortPriority = sortPriority
	c.isActive = isActive
	return nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Title() string        { return c.title }
func (c *Category) SortPriority() int    { return c.sortPriority }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
