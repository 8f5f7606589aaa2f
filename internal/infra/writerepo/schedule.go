package writerepo

import (
	"context"
	"time"

	"takeout-api/internal/domain/schedule"
	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

type ScheduleRepository struct {
	db db.DBTX
}

func NewScheduleRepository(db db.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const insertBusinessHour = `
INSERT INTO business_hours (id, weekday, label, start_minutes, end_minutes, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *ScheduleRepository) CreateBusinessHour(ctx context.Context, hour *schedule.BusinessHour) (uuid.UUID, error) {
	block := hour.Block()
	_, err := r.db.Exec(ctx, insertBusinessHour,
		hour.ID(), int16(hour.Weekday()), block.Label(),
		int16(block.Start()), int16(block.End()), hour.IsActive(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create business hour", err)
	}
	return hour.ID(), nil
}

const getBusinessHourByID = `
SELECT id, weekday, label, start_minutes, end_minutes, is_active, created_at, updated_at
FROM business_hours
WHERE id = $1
`

func (r *ScheduleRepository) FindBusinessHourByID(ctx context.Context, id uuid.UUID) (*schedule.BusinessHour, error) {
	var (
		hourID       uuid.UUID
		weekday      int16
		label        string
		startM, endM int16
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := r.db.QueryRow(ctx, getBusinessHourByID, id).Scan(
		&hourID, &weekday, &label, &startM, &endM, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business hour not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find business hour by ID", err)
	}

	block, err := schedule.NewHourBlock(label, wallclock.TimeOfDay(startM), wallclock.TimeOfDay(endM))
	if err != nil {
		return nil, infra.WrapRepoErr("stored business hour is invalid", err)
	}
	return schedule.ReconstructBusinessHour(hourID, time.Weekday(weekday), block, isActive, createdAt, updatedAt), nil
}

const updateBusinessHour = `
UPDATE business_hours
SET weekday = $2, label = $3, start_minutes = $4, end_minutes = $5, is_active = $6, updated_at = now()
WHERE id = $1
`

func (r *ScheduleRepository) UpdateBusinessHour(ctx context.Context, hour *schedule.BusinessHour) error {
	block := hour.Block()
	tag, err := r.db.Exec(ctx, updateBusinessHour,
		hour.ID(), int16(hour.Weekday()), block.Label(),
		int16(block.Start()), int16(block.End()), hour.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update business hour", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("business hour not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBusinessHour = `
DELETE FROM business_hours WHERE id = $1
`

func (r *ScheduleRepository) DeleteBusinessHour(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteBusinessHour, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete business hour", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("business hour not found", nil, infra.KindNotFound)
	}
	return nil
}

const insertSpecialSchedule = `
INSERT INTO special_schedules (id, on_date, is_closed, note)
VALUES ($1, $2, $3, $4)
`

const insertSpecialScheduleBlock = `
INSERT INTO special_schedule_blocks (id, special_schedule_id, label, start_minutes, end_minutes)
VALUES ($1, $2, $3, $4, $5)
`

func (r *ScheduleRepository) CreateSpecialSchedule(ctx context.Context, special *schedule.SpecialSchedule) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertSpecialSchedule,
		special.ID(), special.Date().Time(time.UTC), special.IsClosed(), special.Note(),
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("special schedule already set for date", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create special schedule", err)
	}

	for _, block := range special.Blocks() {
		_, err = r.db.Exec(ctx, insertSpecialScheduleBlock,
			uuid.New(), special.ID(), block.Label(), int16(block.Start()), int16(block.End()),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create special schedule block", err)
		}
	}
	return special.ID(), nil
}

const deleteSpecialSchedule = `
DELETE FROM special_schedules WHERE id = $1
`

func (r *ScheduleRepository) DeleteSpecialSchedule(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSpecialSchedule, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete special schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("special schedule not found", nil, infra.KindNotFound)
	}
	return nil
}
