package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/flow"
	reqdto "takeout-api/internal/handler/dto/request"
	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/config"
	"takeout-api/internal/pkg/errs"
	"takeout-api/internal/usecase/queries"
)

var (
	ErrInvalidPickup    = errs.New("invalid pickup selection")
	ErrNoPickupSelected = errs.New("no pickup selection yet")
	ErrItemNotOffered   = errs.New("item not offered in the selected window")
	ErrCartStoreFailed  = errs.New("cart session store failed")
)

// CartStore persists in-progress wizard sessions keyed by an opaque session
// ID. Missing sessions surface as KindNotFound.
type CartStore interface {
	Find(ctx context.Context, sessionID string) (*flow.Wizard, error)
	Save(ctx context.Context, sessionID string, w *flow.Wizard, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

type CartCommands interface {
	Get(ctx context.Context, sessionID string) (*flow.Wizard, error)
	SetPickup(ctx context.Context, sessionID string, req reqdto.SetPickupRequest) (*flow.Wizard, error)
	SetItemQuantity(ctx context.Context, sessionID string, req reqdto.SetQuantityRequest) (*flow.Wizard, error)
	SetItemOptions(ctx context.Context, sessionID string, req reqdto.SetOptionsRequest) (*flow.Wizard, error)
	Advance(ctx context.Context, sessionID string) (*flow.Wizard, error)
	Back(ctx context.Context, sessionID string) (*flow.Wizard, error)
	Clear(ctx context.Context, sessionID string) error
}

type cartCommandsImpl struct {
	store               CartStore
	availabilityQueries queries.AvailabilityQueries
	orderCfg            config.OrderConfig
}

func NewCartCommands(store CartStore, availabilityQueries queries.AvailabilityQueries, orderCfg config.OrderConfig) CartCommands {
	return &cartCommandsImpl{
		store:               store,
		availabilityQueries: availabilityQueries,
		orderCfg:            orderCfg,
	}
}

func (c *cartCommandsImpl) Get(ctx context.Context, sessionID string) (*flow.Wizard, error) {
	return c.load(ctx, sessionID)
}

func (c *cartCommandsImpl) SetPickup(ctx context.Context, sessionID string, req reqdto.SetPickupRequest) (*flow.Wizard, error) {
	sel, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPickup)
	}
	if _, err = c.availabilityQueries.ResolveWindow(ctx, sel); err != nil {
		return nil, err
	}

	wizard, err := c.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	wizard.SetPickup(sel)
	return wizard, c.save(ctx, sessionID, wizard)
}

func (c *cartCommandsImpl) SetItemQuantity(ctx context.Context, sessionID string, req reqdto.SetQuantityRequest) (*flow.Wizard, error) {
	wizard, window, err := c.loadWithWindow(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, ok := window.Item(req.ItemID)
	if !ok {
		return nil, ErrItemNotOffered
	}
	wizard.Cart.SetQuantity(item, req.Quantity)
	return wizard, c.save(ctx, sessionID, wizard)
}

func (c *cartCommandsImpl) SetItemOptions(ctx context.Context, sessionID string, req reqdto.SetOptionsRequest) (*flow.Wizard, error) {
	wizard, window, err := c.loadWithWindow(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, ok := window.Item(req.ItemID)
	if !ok {
		return nil, ErrItemNotOffered
	}

	// Unknown IDs simply resolve to nothing; the ledger drops foreign
	// options either way.
	chosen := make([]availability.OptionOffering, 0, len(req.OptionIDs))
	for _, id := range req.OptionIDs {
		if opt, found := item.Option(id); found {
			chosen = append(chosen, opt)
		}
	}
	wizard.Cart.SetOptions(item, chosen)
	return wizard, c.save(ctx, sessionID, wizard)
}

func (c *cartCommandsImpl) Advance(ctx context.Context, sessionID string) (*flow.Wizard, error) {
	wizard, err := c.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err = wizard.Next(); err != nil {
		return nil, err
	}
	return wizard, c.save(ctx, sessionID, wizard)
}

func (c *cartCommandsImpl) Back(ctx context.Context, sessionID string) (*flow.Wizard, error) {
	wizard, err := c.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err = wizard.Back(); err != nil {
		return nil, err
	}
	return wizard, c.save(ctx, sessionID, wizard)
}

func (c *cartCommandsImpl) Clear(ctx context.Context, sessionID string) error {
	if err := c.store.Delete(ctx, sessionID); err != nil {
		return errs.Mark(err, ErrCartStoreFailed)
	}
	return nil
}

func (c *cartCommandsImpl) load(ctx context.Context, sessionID string) (*flow.Wizard, error) {
	wizard, err := c.store.Find(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return flow.New(), nil
		}
		return nil, errs.Mark(err, ErrCartStoreFailed)
	}
	return wizard, nil
}

func (c *cartCommandsImpl) loadWithWindow(ctx context.Context, sessionID string) (*flow.Wizard, availability.Window, error) {
	wizard, err := c.load(ctx, sessionID)
	if err != nil {
		return nil, availability.Window{}, err
	}
	if wizard.Pickup.IsZero() {
		return nil, availability.Window{}, ErrNoPickupSelected
	}
	window, err := c.availabilityQueries.ResolveWindow(ctx, wizard.Pickup)
	if err != nil {
		return nil, availability.Window{}, err
	}
	return wizard, window, nil
}

func (c *cartCommandsImpl) save(ctx context.Context, sessionID string, w *flow.Wizard) error {
	if err := c.store.Save(ctx, sessionID, w, c.orderCfg.CartSessionTTL); err != nil {
		return errs.Mark(err, ErrCartStoreFailed)
	}
	return nil
}

// NewSessionID mints the opaque cart session identifier carried in a cookie.
func NewSessionID() string {
	return uuid.NewString()
}
