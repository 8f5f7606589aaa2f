package readstore

import (
	"context"
	"time"

	"takeout-api/internal/infra"
	"takeout-api/internal/infra/db"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(db db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

const findBusinessHours = `
SELECT id, weekday, label, start_minutes, end_minutes, is_active, created_at, updated_at
FROM business_hours
ORDER BY weekday, start_minutes
`

func (r *ScheduleReadStore) FindBusinessHours(ctx context.Context) ([]*queries.BusinessHourView, error) {
	rows, err := r.db.Query(ctx, findBusinessHours)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list business hours", err)
	}
	defer rows.Close()

	var views []*queries.BusinessHourView
	for rows.Next() {
		var (
			v            queries.BusinessHourView
			weekday      int16
			startM, endM int16
		)
		if err = rows.Scan(&v.ID, &weekday, &v.Label, &startM, &endM, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan business hour", err)
		}
		v.Weekday = time.Weekday(weekday)
		v.Start = wallclock.TimeOfDay(startM)
		v.End = wallclock.TimeOfDay(endM)
		views = append(views, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list business hours", err)
	}
	return views, nil
}

const findSpecialSchedules = `
SELECT id, on_date, is_closed, note, created_at, updated_at
FROM special_schedules
WHERE on_date BETWEEN $1 AND $2
ORDER BY on_date
`

func (r *ScheduleReadStore) FindSpecialSchedules(ctx context.Context, from, to wallclock.Date) ([]*queries.SpecialScheduleView, error) {
	rows, err := r.db.Query(ctx, findSpecialSchedules, from.Time(time.UTC), to.Time(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list special schedules", err)
	}
	defer rows.Close()

	var views []*queries.SpecialScheduleView
	for rows.Next() {
		v, scanErr := scanSpecialSchedule(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list special schedules", err)
	}

	if err = r.attachBlocks(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

const findSpecialScheduleByID = `
SELECT id, on_date, is_closed, note, created_at, updated_at
FROM special_schedules
WHERE id = $1
`

func (r *ScheduleReadStore) FindSpecialScheduleByID(ctx context.Context, id uuid.UUID) (*queries.SpecialScheduleView, error) {
	var (
		v      queries.SpecialScheduleView
		onDate time.Time
	)
	err := r.db.QueryRow(ctx, findSpecialScheduleByID, id).Scan(
		&v.ID, &onDate, &v.IsClosed, &v.Note, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("special schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find special schedule by ID", err)
	}
	v.Date = wallclock.DateOf(onDate)

	if err = r.attachBlocks(ctx, []*queries.SpecialScheduleView{&v}); err != nil {
		return nil, err
	}
	return &v, nil
}

const findBlocksByScheduleIDs = `
SELECT special_schedule_id, label, start_minutes, end_minutes
FROM special_schedule_blocks
WHERE special_schedule_id = ANY($1)
ORDER BY special_schedule_id, start_minutes
`

func (r *ScheduleReadStore) attachBlocks(ctx context.Context, views []*queries.SpecialScheduleView) error {
	if len(views) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*queries.SpecialScheduleView, len(views))
	ids := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		v.Blocks = []queries.SpecialScheduleBlockView{}
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}

	rows, err := r.db.Query(ctx, findBlocksByScheduleIDs, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list special schedule blocks", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			scheduleID   uuid.UUID
			label        string
			startM, endM int16
		)
		if err = rows.Scan(&scheduleID, &label, &startM, &endM); err != nil {
			return infra.WrapRepoErr("failed to scan special schedule block", err)
		}
		if v, ok := byID[scheduleID]; ok {
			v.Blocks = append(v.Blocks, queries.SpecialScheduleBlockView{
				Label: label,
				Start: wallclock.TimeOfDay(startM),
				End:   wallclock.TimeOfDay(endM),
			})
		}
	}
	if err = rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to list special schedule blocks", err)
	}
	return nil
}

func scanSpecialSchedule(row pgx.Rows) (*queries.SpecialScheduleView, error) {
	var (
		v      queries.SpecialScheduleView
		onDate time.Time
	)
	if err := row.Scan(&v.ID, &onDate, &v.IsClosed, &v.Note, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to scan special schedule", err)
	}
	v.Date = wallclock.DateOf(onDate)
	return &v, nil
}
