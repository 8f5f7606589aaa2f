package request

import (
	"time"

	"takeout-api/internal/domain/schedule"
	"takeout-api/internal/pkg/wallclock"
)

type HourBlockPayload struct {
	Label string `json:"label" binding:"required,max=50"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (p HourBlockPayload) ToDomain() (schedule.HourBlock, error) {
	start, err := wallclock.ParseTimeOfDay(p.Start)
	if err != nil {
		return schedule.HourBlock{}, err
	}
	end, err := wallclock.ParseTimeOfDay(p.End)
	if err != nil {
		return schedule.HourBlock{}, err
	}
	return schedule.NewHourBlock(p.Label, start, end)
}

type CreateBusinessHourRequest struct {
	Weekday int `json:"weekday" binding:"gte=0,lte=6"`
	HourBlockPayload
}

func (r CreateBusinessHourRequest) ToDomain() (*schedule.BusinessHour, error) {
	block, err := r.HourBlockPayload.ToDomain()
	if err != nil {
		return nil, err
	}
	return schedule.NewBusinessHour(time.Weekday(r.Weekday), block), nil
}

type UpdateBusinessHourRequest struct {
	Weekday int `json:"weekday" binding:"gte=0,lte=6"`
	HourBlockPayload
	IsActive bool `json:"is_active"`
}

type CreateSpecialScheduleRequest struct {
	Date     string             `json:"date" binding:"required"`
	IsClosed bool               `json:"is_closed"`
	Blocks   []HourBlockPayload `json:"blocks"`
	Note     string             `json:"note,omitempty" binding:"max=500"`
}

func (r CreateSpecialScheduleRequest) ToDomain() (*schedule.SpecialSchedule, error) {
	date, err := wallclock.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	blocks := make([]schedule.HourBlock, 0, len(r.Blocks))
	for _, p := range r.Blocks {
		block, blockErr := p.ToDomain()
		if blockErr != nil {
			return nil, blockErr
		}
		blocks = append(blocks, block)
	}
	return schedule.NewSpecialSchedule(date, r.IsClosed, blocks, r.Note)
}
