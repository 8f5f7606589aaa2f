package commands

import (
	"context"

	"github.com/google/uuid"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/catalog"
	reqdto "takeout-api/internal/handler/dto/request"
	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/errs"
)

var (
	ErrCategoryNotFoundWrite = errs.New("category not found")
	ErrItemNotFoundWrite     = errs.New("item not found")
	ErrCategoryInUse         = errs.New("category still has items")
	ErrItemNotStockKind      = errs.New("item does not carry stock")
	ErrInvalidCatalogInput   = errs.New("invalid catalog input")
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, category *catalog.Category) (uuid.UUID, error)
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, category *catalog.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateItem(ctx context.Context, categoryID uuid.UUID, item *catalog.Item) (uuid.UUID, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error)
	UpdateItem(ctx context.Context, item *catalog.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type CatalogCommands interface {
	CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, req reqdto.CreateItemRequest) (uuid.UUID, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateItemRequest) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	SetStockLevel(ctx context.Context, itemID uuid.UUID, req reqdto.SetStockLevelRequest) error
}

type catalogCommandsImpl struct {
	catalogRepo CatalogRepository
	stockRepo   StockRepository
}

func NewCatalogCommands(catalogRepo CatalogRepository, stockRepo StockRepository) CatalogCommands {
	return &catalogCommandsImpl{
		catalogRepo: catalogRepo,
		stockRepo:   stockRepo,
	}
}

func (c *catalogCommandsImpl) CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (uuid.UUID, error) {
	category, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogInput)
	}
	return c.catalogRepo.CreateCategory(ctx, category)
}

func (c *catalogCommandsImpl) UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) error {
	category, err := c.catalogRepo.FindCategoryByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCategoryNotFoundWrite
		}
		return err
	}
	if err = category.Update(req.Title, req.SortPriority, req.IsActive); err != nil {
		return errs.Mark(err, ErrInvalidCatalogInput)
	}
	return c.catalogRepo.UpdateCategory(ctx, category)
}

func (c *catalogCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := c.catalogRepo.DeleteCategory(ctx, id)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrCategoryNotFoundWrite
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrCategoryInUse
	}
	return err
}

func (c *catalogCommandsImpl) CreateItem(ctx context.Context, req reqdto.CreateItemRequest) (uuid.UUID, error) {
	item, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogInput)
	}
	id, err := c.catalogRepo.CreateItem(ctx, req.CategoryID, item)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrCategoryNotFoundWrite
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (c *catalogCommandsImpl) UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateItemRequest) error {
	item, err := c.catalogRepo.FindItemByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrItemNotFoundWrite
		}
		return err
	}
	if err = req.Apply(item); err != nil {
		return errs.Mark(err, ErrInvalidCatalogInput)
	}
	return c.catalogRepo.UpdateItem(ctx, item)
}

func (c *catalogCommandsImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := c.catalogRepo.DeleteItem(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrItemNotFoundWrite
	}
	return err
}

func (c *catalogCommandsImpl) SetStockLevel(ctx context.Context, itemID uuid.UUID, req reqdto.SetStockLevelRequest) error {
	date, err := req.ParseDate()
	if err != nil {
		return errs.Mark(err, ErrInvalidCatalogInput)
	}

	item, err := c.catalogRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrItemNotFoundWrite
		}
		return err
	}
	if item.Kind() != availability.KindStock {
		return ErrItemNotStockKind
	}

	return c.stockRepo.SetLevel(ctx, itemID, date, req.Remaining)
}
