package request

import (
	"takeout-api/internal/domain/availability"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

type SetPickupRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (r SetPickupRequest) ToDomain() (availability.PickupSelection, error) {
	date, err := wallclock.ParseDate(r.Date)
	if err != nil {
		return availability.PickupSelection{}, err
	}
	tod, err := wallclock.ParseTimeOfDay(r.Time)
	if err != nil {
		return availability.PickupSelection{}, err
	}
	return availability.PickupSelection{Date: date, Time: tod}, nil
}

type SetQuantityRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"gte=0"`
}

type SetOptionsRequest struct {
	ItemID    uuid.UUID   `json:"item_id" binding:"required"`
	OptionIDs []uuid.UUID `json:"option_ids"`
}
