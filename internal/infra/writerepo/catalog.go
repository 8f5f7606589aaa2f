package writerepo

import (
	"context"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/catalog"
	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"

	"github.com/google/uuid"
)

type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(db db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const insertCategory = `
INSERT INTO categories (id, title, sort_priority, is_active)
VALUES ($1, $2, $3, $4)
`

func (r *CatalogRepository) CreateCategory(ctx context.Context, category *catalog.Category) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertCategory,
		category.ID(), category.Title(), category.SortPriority(), category.IsActive(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}
	return category.ID(), nil
}

const getCategoryByID = `
SELECT id, title, sort_priority, is_active, created_at, updated_at
FROM categories
WHERE id = $1
`

func (r *CatalogRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var (
		categoryID   uuid.UUID
		title        string
		sortPriority int
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := r.db.QueryRow(ctx, getCategoryByID, id).Scan(
		&categoryID, &title, &sortPriority, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return catalog.ReconstructCategory(categoryID, title, sortPriority, isActive, createdAt, updatedAt), nil
}

const updateCategory = `
UPDATE categories
SET title = $2, sort_priority = $3, is_active = $4, updated_at = now()
WHERE id = $1
`

func (r *CatalogRepository) UpdateCategory(ctx context.Context, category *catalog.Category) error {
	tag, err := r.db.Exec(ctx, updateCategory,
		category.ID(), category.Title(), category.SortPriority(), category.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteCategory = `
DELETE FROM categories WHERE id = $1
`

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteCategory, id)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("category still has items", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

const insertItem = `
INSERT INTO items (id, category_id, name, kind, unit_price, image_ref, note, max_per_order, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

const insertItemOption = `
INSERT INTO item_options (id, item_id, name, note, unit_price)
VALUES ($1, $2, $3, $4, $5)
`

func (r *CatalogRepository) CreateItem(ctx context.Context, categoryID uuid.UUID, item *catalog.Item) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertItem,
		item.ID(), categoryID, item.Name(), item.Kind().String(), item.UnitPrice(),
		item.ImageRef(), item.Note(), item.MaxPerOrder(), item.IsActive(),
	)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("item references missing category", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}

	if err = r.insertOptions(ctx, item.ID(), item.Options()); err != nil {
		return uuid.Nil, err
	}
	return item.ID(), nil
}

const getItemByID = `
SELECT id, name, kind, unit_price, image_ref, note, max_per_order, is_active, created_at, updated_at
FROM items
WHERE id = $1
`

const getItemOptions = `
SELECT id, name, note, unit_price
FROM item_options
WHERE item_id = $1
ORDER BY id
`

func (r *CatalogRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var (
		itemID      uuid.UUID
		name        string
		kind        string
		unitPrice   int
		imageRef    string
		note        string
		maxPerOrder int
		isActive    bool
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := r.db.QueryRow(ctx, getItemByID, id).Scan(
		&itemID, &name, &kind, &unitPrice, &imageRef, &note, &maxPerOrder,
		&isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	rows, err := r.db.Query(ctx, getItemOptions, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item options", err)
	}
	defer rows.Close()

	var options []catalog.Option
	for rows.Next() {
		var (
			optID    uuid.UUID
			optName  string
			optNote  string
			optPrice int
		)
		if err = rows.Scan(&optID, &optName, &optNote, &optPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item option", err)
		}
		options = append(options, catalog.ReconstructOption(optID, optName, optNote, optPrice))
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list item options", err)
	}

	return catalog.ReconstructItem(
		itemID, name, availability.ItemKind(kind), unitPrice, imageRef, note,
		maxPerOrder, isActive, options, createdAt, updatedAt,
	), nil
}

const updateItem = `
UPDATE items
SET name = $2, kind = $3, unit_price = $4, image_ref = $5, note = $6,
    max_per_order = $7, is_active = $8, updated_at = now()
WHERE id = $1
`

const deleteItemOptions = `
DELETE FROM item_options WHERE item_id = $1
`

// UpdateItem replaces the option set wholesale; option identity is not
// preserved across edits (orders keep their own snapshots).
func (r *CatalogRepository) UpdateItem(ctx context.Context, item *catalog.Item) error {
	tag, err := r.db.Exec(ctx, updateItem,
		item.ID(), item.Name(), item.Kind().String(), item.UnitPrice(),
		item.ImageRef(), item.Note(), item.MaxPerOrder(), item.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}

	if _, err = r.db.Exec(ctx, deleteItemOptions, item.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear item options", err)
	}
	return r.insertOptions(ctx, item.ID(), item.Options())
}

const deleteItem = `
DELETE FROM items WHERE id = $1
`

func (r *CatalogRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteItem, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) insertOptions(ctx context.Context, itemID uuid.UUID, options []catalog.Option) error {
	for _, opt := range options {
		_, err := r.db.Exec(ctx, insertItemOption,
			opt.ID(), itemID, opt.Name(), opt.Note(), opt.UnitPrice(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create item option", err)
		}
	}
	return nil
}
