package response

import (
	"time"

	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessHourResponse struct {
	ID        uuid.UUID           `json:"id"`
	Weekday   int                 `json:"weekday"`
	Label     string              `json:"label"`
	Start     wallclock.TimeOfDay `json:"start"`
	End       wallclock.TimeOfDay `json:"end"`
	IsActive  bool                `json:"is_active"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type SpecialScheduleBlockResponse struct {
	Label string              `json:"label"`
	Start wallclock.TimeOfDay `json:"start"`
	End   wallclock.TimeOfDay `json:"end"`
}

type SpecialScheduleResponse struct {
	ID        uuid.UUID                      `json:"id"`
	Date      wallclock.Date                 `json:"date"`
	IsClosed  bool                           `json:"is_closed"`
	Note      string                         `json:"note,omitempty"`
	Blocks    []SpecialScheduleBlockResponse `json:"blocks"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

func FromBusinessHourView(v *queries.BusinessHourView) *BusinessHourResponse {
	return &BusinessHourResponse{
		ID:        v.ID,
		Weekday:   int(v.Weekday),
		Label:     v.Label,
		Start:     v.Start,
		End:       v.End,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromSpecialScheduleView(v *queries.SpecialScheduleView) *SpecialScheduleResponse {
	resp := &SpecialScheduleResponse{
		ID:        v.ID,
		Date:      v.Date,
		IsClosed:  v.IsClosed,
		Note:      v.Note,
		Blocks:    make([]SpecialScheduleBlockResponse, 0, len(v.Blocks)),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	for _, b := range v.Blocks {
		resp.Blocks = append(resp.Blocks, SpecialScheduleBlockResponse{
			Label: b.Label,
			Start: b.Start,
			End:   b.End,
		})
	}
	return resp
}
