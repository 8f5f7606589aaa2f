//go:build unit

package commands_test

import (
	"context"
	"testing"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/catalog"
	reqdto "takeout-api/internal/handler/dto/request"
	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	categories    map[uuid.UUID]*catalog.Category
	items         map[uuid.UUID]*catalog.Item
	inUse         map[uuid.UUID]bool
	deletedItems  []uuid.UUID
	updatedItems  []uuid.UUID
	updatedGroups []uuid.UUID
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		categories: make(map[uuid.UUID]*catalog.Category),
		items:      make(map[uuid.UUID]*catalog.Item),
		inUse:      make(map[uuid.UUID]bool),
	}
}

func (r *fakeCatalogRepo) CreateCategory(_ context.Context, category *catalog.Category) (uuid.UUID, error) {
	r.categories[category.ID()] = category
	return category.ID(), nil
}

func (r *fakeCatalogRepo) FindCategoryByID(_ context.Context, id uuid.UUID) (*catalog.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
}

func (r *fakeCatalogRepo) UpdateCategory(_ context.Context, category *catalog.Category) error {
	r.updatedGroups = append(r.updatedGroups, category.ID())
	return nil
}

func (r *fakeCatalogRepo) DeleteCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	if r.inUse[id] {
		return infra.WrapRepoErr("delete category", &pgconn.PgError{Code: "23503"})
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCatalogRepo) CreateItem(_ context.Context, categoryID uuid.UUID, item *catalog.Item) (uuid.UUID, error) {
	if _, ok := r.categories[categoryID]; !ok {
		return uuid.Nil, infra.WrapRepoErr("create item", &pgconn.PgError{Code: "23503"})
	}
	r.items[item.ID()] = item
	return item.ID(), nil
}

func (r *fakeCatalogRepo) FindItemByID(_ context.Context, id uuid.UUID) (*catalog.Item, error) {
	if i, ok := r.items[id]; ok {
		return i, nil
	}
	return nil, infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
}

func (r *fakeCatalogRepo) UpdateItem(_ context.Context, item *catalog.Item) error {
	r.updatedItems = append(r.updatedItems, item.ID())
	return nil
}

func (r *fakeCatalogRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	r.deletedItems = append(r.deletedItems, id)
	delete(r.items, id)
	return nil
}

type stockCall struct {
	itemID uuid.UUID
	date   wallclock.Date
	qty    int
}

type fakeStockRepo struct {
	setCalls   []stockCall
	decCalls   []stockCall
	incCalls   []stockCall
	outOfStock bool
}

func (r *fakeStockRepo) Decrement(_ context.Context, _ db.DBTX, itemID uuid.UUID, date wallclock.Date, qty int) error {
	if r.outOfStock {
		return infra.WrapRepoErr("stock exhausted", nil, infra.KindConflict)
	}
	r.decCalls = append(r.decCalls, stockCall{itemID: itemID, date: date, qty: qty})
	return nil
}

func (r *fakeStockRepo) Increment(_ context.Context, _ db.DBTX, itemID uuid.UUID, date wallclock.Date, qty int) error {
	r.incCalls = append(r.incCalls, stockCall{itemID: itemID, date: date, qty: qty})
	return nil
}

func (r *fakeStockRepo) SetLevel(_ context.Context, itemID uuid.UUID, date wallclock.Date, remaining int) error {
	r.setCalls = append(r.setCalls, stockCall{itemID: itemID, date: date, qty: remaining})
	return nil
}

func mustItem(t *testing.T, kind availability.ItemKind) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem("Barley Tea", kind, 200, "", "", 10, nil)
	require.NoError(t, err)
	return item
}

func TestCatalogDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while items remain", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		category, err := catalog.NewCategory("Drinks", 1)
		require.NoError(t, err)
		repo.categories[category.ID()] = category
		repo.inUse[category.ID()] = true

		cmds := commands.NewCatalogCommands(repo, &fakeStockRepo{})
		err = cmds.DeleteCategory(ctx, category.ID())
		assert.ErrorIs(t, err, commands.ErrCategoryInUse)
	})

	t.Run("unknown category", func(t *testing.T) {
		cmds := commands.NewCatalogCommands(newFakeCatalogRepo(), &fakeStockRepo{})
		err := cmds.DeleteCategory(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrCategoryNotFoundWrite)
	})
}

func TestCatalogCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("missing category surfaces as not found", func(t *testing.T) {
		cmds := commands.NewCatalogCommands(newFakeCatalogRepo(), &fakeStockRepo{})
		_, err := cmds.CreateItem(ctx, reqdto.CreateItemRequest{
			CategoryID:  uuid.New(),
			Name:        "Karaage Bento",
			Kind:        "food",
			UnitPrice:   800,
			MaxPerOrder: 5,
		})
		assert.ErrorIs(t, err, commands.ErrCategoryNotFoundWrite)
	})

	t.Run("domain validation failures are marked as input errors", func(t *testing.T) {
		cmds := commands.NewCatalogCommands(newFakeCatalogRepo(), &fakeStockRepo{})
		_, err := cmds.CreateItem(ctx, reqdto.CreateItemRequest{
			CategoryID:  uuid.New(),
			Name:        "",
			Kind:        "food",
			UnitPrice:   800,
			MaxPerOrder: 5,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCatalogInput)
	})
}

func TestCatalogSetStockLevel(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the level for a stock item", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		stockRepo := &fakeStockRepo{}
		item := mustItem(t, availability.KindStock)
		repo.items[item.ID()] = item

		cmds := commands.NewCatalogCommands(repo, stockRepo)
		err := cmds.SetStockLevel(ctx, item.ID(), reqdto.SetStockLevelRequest{Date: "2026-03-01", Remaining: 12})
		require.NoError(t, err)

		require.Len(t, stockRepo.setCalls, 1)
		assert.Equal(t, item.ID(), stockRepo.setCalls[0].itemID)
		assert.Equal(t, 12, stockRepo.setCalls[0].qty)
	})

	t.Run("food items carry no stock", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		item := mustItem(t, availability.KindFood)
		repo.items[item.ID()] = item

		cmds := commands.NewCatalogCommands(repo, &fakeStockRepo{})
		err := cmds.SetStockLevel(ctx, item.ID(), reqdto.SetStockLevelRequest{Date: "2026-03-01", Remaining: 12})
		assert.ErrorIs(t, err, commands.ErrItemNotStockKind)
	})

	t.Run("unparseable date", func(t *testing.T) {
		cmds := commands.NewCatalogCommands(newFakeCatalogRepo(), &fakeStockRepo{})
		err := cmds.SetStockLevel(ctx, uuid.New(), reqdto.SetStockLevelRequest{Date: "March 1st", Remaining: 12})
		assert.ErrorIs(t, err, commands.ErrInvalidCatalogInput)
	})

	t.Run("unknown item", func(t *testing.T) {
		cmds := commands.NewCatalogCommands(newFakeCatalogRepo(), &fakeStockRepo{})
		err := cmds.SetStockLevel(ctx, uuid.New(), reqdto.SetStockLevelRequest{Date: "2026-03-01", Remaining: 12})
		assert.ErrorIs(t, err, commands.ErrItemNotFoundWrite)
	})
}
