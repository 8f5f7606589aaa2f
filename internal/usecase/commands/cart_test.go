//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/flow"
	reqdto "takeout-api/internal/handler/dto/request"
	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/config"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/commands"
	"takeout-api/internal/usecase/queries"
	"takeout-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartStore struct {
	sessions map[string]*flow.Wizard
	lastTTL  time.Duration
}

func newMemCartStore() *memCartStore {
	return &memCartStore{sessions: make(map[string]*flow.Wizard)}
}

func (s *memCartStore) Find(_ context.Context, sessionID string) (*flow.Wizard, error) {
	w, ok := s.sessions[sessionID]
	if !ok {
		return nil, infra.WrapRepoErr("cart session not found", nil, infra.KindNotFound)
	}
	copied := *w
	return &copied, nil
}

func (s *memCartStore) Save(_ context.Context, sessionID string, w *flow.Wizard, ttl time.Duration) error {
	copied := *w
	s.sessions[sessionID] = &copied
	s.lastTTL = ttl
	return nil
}

func (s *memCartStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

// stubAvailability resolves exactly one window and reports everything else
// as unavailable.
type stubAvailability struct {
	window availability.Window
}

func (s *stubAvailability) Windows(context.Context) ([]availability.Window, error) {
	return []availability.Window{s.window}, nil
}

func (s *stubAvailability) SelectableDates(context.Context) ([]wallclock.Date, error) {
	return []wallclock.Date{s.window.Date}, nil
}

func (s *stubAvailability) SlotsForDate(context.Context, wallclock.Date) ([]queries.WindowSlotsView, error) {
	return nil, nil
}

func (s *stubAvailability) ResolveWindow(_ context.Context, sel availability.PickupSelection) (availability.Window, error) {
	if s.window.Contains(sel) {
		return s.window, nil
	}
	return availability.Window{}, queries.ErrWindowNotFound
}

type cartFixture struct {
	commands commands.CartCommands
	store    *memCartStore
	window   availability.Window
	item     availability.ItemOffering
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	item := builder.NewItemOfferingBuilder().WithMaxQuantity(3).Build()
	window := builder.NewWindowBuilder().WithItems(item).Build()
	store := newMemCartStore()
	return &cartFixture{
		commands: commands.NewCartCommands(store, &stubAvailability{window: window}, config.OrderConfig{
			SlotStepMinutes:     15,
			CartSessionTTL:      2 * time.Hour,
			MaxAvailabilityDays: 31,
		}),
		store:  store,
		window: window,
		item:   item,
	}
}

func (f *cartFixture) pickupRequest() reqdto.SetPickupRequest {
	return reqdto.SetPickupRequest{Date: f.window.Date.String(), Time: f.window.Start.String()}
}

func (f *cartFixture) withPickup(t *testing.T, sessionID string) {
	t.Helper()
	_, err := f.commands.SetPickup(context.Background(), sessionID, f.pickupRequest())
	require.NoError(t, err)
}

func TestCartGet(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	t.Run("missing session starts a fresh wizard", func(t *testing.T) {
		w, err := f.commands.Get(ctx, "unknown")
		require.NoError(t, err)
		assert.Equal(t, flow.StepPickup, w.Step)
		assert.True(t, w.Pickup.IsZero())
		assert.True(t, w.Cart.IsEmpty())
	})
}

func TestCartSetPickup(t *testing.T) {
	ctx := context.Background()

	t.Run("valid selection is stored with the session TTL", func(t *testing.T) {
		f := newCartFixture(t)
		w, err := f.commands.SetPickup(ctx, "s1", f.pickupRequest())
		require.NoError(t, err)
		assert.Equal(t, f.window.Date, w.Pickup.Date)
		assert.Equal(t, 2*time.Hour, f.store.lastTTL)
	})

	t.Run("malformed date is rejected before lookup", func(t *testing.T) {
		f := newCartFixture(t)
		_, err := f.commands.SetPickup(ctx, "s1", reqdto.SetPickupRequest{Date: "03/01/2026", Time: "10:00"})
		assert.ErrorIs(t, err, commands.ErrInvalidPickup)
	})

	t.Run("selection outside every window fails", func(t *testing.T) {
		f := newCartFixture(t)
		_, err := f.commands.SetPickup(ctx, "s1", reqdto.SetPickupRequest{Date: f.window.Date.String(), Time: f.window.End.String()})
		assert.ErrorIs(t, err, queries.ErrWindowNotFound)
	})

	t.Run("changing the pickup empties the cart", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		_, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: f.item.ItemID, Quantity: 2})
		require.NoError(t, err)

		later := f.window.Start + 30
		w, err := f.commands.SetPickup(ctx, "s1", reqdto.SetPickupRequest{Date: f.window.Date.String(), Time: later.String()})
		require.NoError(t, err)
		assert.True(t, w.Cart.IsEmpty())
	})
}

func TestCartSetItemQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a pickup selection first", func(t *testing.T) {
		f := newCartFixture(t)
		_, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: f.item.ItemID, Quantity: 1})
		assert.ErrorIs(t, err, commands.ErrNoPickupSelected)
	})

	t.Run("unknown item is not offered", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		_, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: uuid.New(), Quantity: 1})
		assert.ErrorIs(t, err, commands.ErrItemNotOffered)
	})

	t.Run("quantity is clamped to the window maximum", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		w, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: f.item.ItemID, Quantity: 99})
		require.NoError(t, err)
		assert.Equal(t, 3, w.Cart.ItemCount())
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		_, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: f.item.ItemID, Quantity: 2})
		require.NoError(t, err)
		w, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: f.item.ItemID, Quantity: 0})
		require.NoError(t, err)
		assert.True(t, w.Cart.IsEmpty())
	})
}

func TestCartSetItemOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign option ids are dropped", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		_, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: f.item.ItemID, Quantity: 1})
		require.NoError(t, err)

		w, err := f.commands.SetItemOptions(ctx, "s1", reqdto.SetOptionsRequest{
			ItemID:    f.item.ItemID,
			OptionIDs: []uuid.UUID{f.item.Options[0].OptionID, uuid.New()},
		})
		require.NoError(t, err)

		line, ok := w.Cart.Line(f.item.ItemID)
		require.True(t, ok)
		require.Len(t, line.Options, 1)
		assert.Equal(t, f.item.Options[0].OptionID, line.Options[0].OptionID)
	})

	t.Run("options on an absent line are a no-op", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		w, err := f.commands.SetItemOptions(ctx, "s1", reqdto.SetOptionsRequest{
			ItemID:    f.item.ItemID,
			OptionIDs: []uuid.UUID{f.item.Options[0].OptionID},
		})
		require.NoError(t, err)
		assert.True(t, w.Cart.IsEmpty())
	})
}

func TestCartStepTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("advance needs a pickup then a non-empty cart", func(t *testing.T) {
		f := newCartFixture(t)

		_, err := f.commands.Advance(ctx, "s1")
		assert.ErrorIs(t, err, flow.ErrPickupRequired)

		f.withPickup(t, "s1")
		w, err := f.commands.Advance(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, flow.StepItems, w.Step)

		_, err = f.commands.Advance(ctx, "s1")
		assert.ErrorIs(t, err, flow.ErrEmptyCart)
	})

	t.Run("walks forward to confirm and no further", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		_, err := f.commands.SetItemQuantity(ctx, "s1", reqdto.SetQuantityRequest{ItemID: f.item.ItemID, Quantity: 1})
		require.NoError(t, err)

		steps := []flow.Step{flow.StepItems, flow.StepUserInfo, flow.StepConfirm}
		for _, want := range steps {
			w, advErr := f.commands.Advance(ctx, "s1")
			require.NoError(t, advErr)
			assert.Equal(t, want, w.Step)
		}

		_, err = f.commands.Advance(ctx, "s1")
		assert.ErrorIs(t, err, flow.ErrAtLastStep)
	})

	t.Run("back stops at the first step", func(t *testing.T) {
		f := newCartFixture(t)
		f.withPickup(t, "s1")
		_, err := f.commands.Advance(ctx, "s1")
		require.NoError(t, err)

		w, err := f.commands.Back(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, flow.StepPickup, w.Step)

		_, err = f.commands.Back(ctx, "s1")
		assert.ErrorIs(t, err, flow.ErrAtFirstStep)
	})
}

func TestCartClear(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	f.withPickup(t, "s1")

	require.NoError(t, f.commands.Clear(ctx, "s1"))

	w, err := f.commands.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, w.Pickup.IsZero())
}
