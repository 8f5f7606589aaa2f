package readstore

import (
	"context"

	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

const findCategories = `
SELECT id, title, sort_priority, is_active, created_at, updated_at
FROM categories
WHERE ($1 OR is_active)
ORDER BY sort_priority, created_at
`

func (r *CatalogReadStore) FindCategories(ctx context.Context, includeInactive bool) ([]*queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, findCategories, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var views []*queries.CategoryView
	for rows.Next() {
		var v queries.CategoryView
		if err = rows.Scan(&v.ID, &v.Title, &v.SortPriority, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		views = append(views, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	return views, nil
}

const findCategoryByID = `
SELECT id, title, sort_priority, is_active, created_at, updated_at
FROM categories
WHERE id = $1
`

func (r *CatalogReadStore) FindCategoryByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	var v queries.CategoryView
	err := r.db.QueryRow(ctx, findCategoryByID, id).Scan(
		&v.ID, &v.Title, &v.SortPriority, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find category by ID", err)
	}
	return &v, nil
}

const findItems = `
SELECT id, category_id, name, kind, unit_price, image_ref, note, max_per_order, is_active, created_at, updated_at
FROM items
WHERE ($1::uuid IS NULL OR category_id = $1)
  AND ($2 OR is_active)
ORDER BY created_at
`

func (r *CatalogReadStore) FindItems(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, findItems, categoryID, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	var views []*queries.ItemView
	for rows.Next() {
		var v queries.ItemView
		if err = rows.Scan(
			&v.ID, &v.CategoryID, &v.Name, &v.Kind, &v.UnitPrice, &v.ImageRef,
			&v.Note, &v.MaxPerOrder, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		views = append(views, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}

	if err = r.attachOptions(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

const findItemByID = `
SELECT id, category_id, name, kind, unit_price, image_ref, note, max_per_order, is_active, created_at, updated_at
FROM items
WHERE id = $1
`

func (r *CatalogReadStore) FindItemByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	var v queries.ItemView
	err := r.db.QueryRow(ctx, findItemByID, id).Scan(
		&v.ID, &v.CategoryID, &v.Name, &v.Kind, &v.UnitPrice, &v.ImageRef,
		&v.Note, &v.MaxPerOrder, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	if err = r.attachOptions(ctx, []*queries.ItemView{&v}); err != nil {
		return nil, err
	}
	return &v, nil
}

const findOptionsByItemIDs = `
SELECT id, item_id, name, note, unit_price
FROM item_options
WHERE item_id = ANY($1)
ORDER BY item_id, id
`

func (r *CatalogReadStore) attachOptions(ctx context.Context, items []*queries.ItemView) error {
	if len(items) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*queries.ItemView, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		item.Options = []queries.OptionView{}
		byID[item.ID] = item
		ids = append(ids, item.ID)
	}

	rows, err := r.db.Query(ctx, findOptionsByItemIDs, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list item options", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			opt    queries.OptionView
			itemID uuid.UUID
		)
		if err = rows.Scan(&opt.ID, &itemID, &opt.Name, &opt.Note, &opt.UnitPrice); err != nil {
			return infra.WrapRepoErr("failed to scan item option", err)
		}
		if item, ok := byID[itemID]; ok {
			item.Options = append(item.Options, opt)
		}
	}
	if err = rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to list item options", err)
	}
	return nil
}
