// Package flow models the reservation flow as a linear four-step wizard:
// pickup selection, item selection, user info, confirmation. Order submission
// itself is an external call, not a wizard state.
package flow

import (
	"errors"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/cart"
)

type Step string

const (
	StepPickup   Step = "pickup"
	StepItems    Step = "items"
	StepUserInfo Step = "user_info"
	StepConfirm  Step = "confirm"
)

func (s Step) IsValid() bool {
	switch s {
	case StepPickup, StepItems, StepUserInfo, StepConfirm:
		return true
	default:
		return false
	}
}

var (
	ErrPickupRequired = errors.New("pickup selection required")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrAtFirstStep    = errors.New("already at first step")
	ErrAtLastStep     = errors.New("already at last step")
)

// Wizard holds one session's in-progress reservation. Fields are exported for
// session serialization; mutate only through the methods.
type Wizard struct {
	Step   Step                         `json:"step"`
	Pickup availability.PickupSelection `json:"pickup"`
	Cart   cart.Cart                    `json:"cart"`
}

func New() *Wizard {
	return &Wizard{Step: StepPickup}
}

// SetPickup records the pickup selection. Changing an already-made selection
// resets the cart: item availability is keyed by the pickup window, so lines
// chosen under another window are meaningless.
func (w *Wizard) SetPickup(sel availability.PickupSelection) {
	if !w.Pickup.IsZero() && w.Pickup != sel {
		w.Cart.Clear()
	}
	w.Pickup = sel
}

// Next advances one step. Transitions are strictly forward, one step at a
// time; the guards mirror what each screen requires before proceeding.
func (w *Wizard) Next() error {
	switch w.Step {
	case StepPickup:
		if w.Pickup.IsZero() {
			return ErrPickupRequired
		}
		w.Step = StepItems
	case StepItems:
		if w.Cart.IsEmpty() {
			return ErrEmptyCart
		}
		w.Step = StepUserInfo
	case StepUserInfo:
		w.Step = StepConfirm
	case StepConfirm:
		return ErrAtLastStep
	}
	return nil
}

// Back retreats exactly one step. State entered so far is kept; only a pickup
// change discards the cart.
func (w *Wizard) Back() error {
	switch w.Step {
	case StepPickup:
		return ErrAtFirstStep
	case StepItems:
		w.Step = StepPickup
	case StepUserInfo:
		w.Step = StepItems
	case StepConfirm:
		w.Step = StepUserInfo
	}
	return nil
}
