package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"takeout-api/internal/domain/schedule"
	reqdto "takeout-api/internal/handler/dto/request"
	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/errs"
)

var (
	ErrBusinessHourNotFound     = errs.New("business hour not found")
	ErrSpecialScheduleNotFoundW = errs.New("special schedule not found")
	ErrDuplicateSpecialSchedule = errs.New("special schedule already set for that date")
	ErrInvalidScheduleInput     = errs.New("invalid schedule input")
)

type ScheduleRepository interface {
	CreateBusinessHour(ctx context.Context, hour *schedule.BusinessHour) (uuid.UUID, error)
	FindBusinessHourByID(ctx context.Context, id uuid.UUID) (*schedule.BusinessHour, error)
	UpdateBusinessHour(ctx context.Context, hour *schedule.BusinessHour) error
	DeleteBusinessHour(ctx context.Context, id uuid.UUID) error

	CreateSpecialSchedule(ctx context.Context, special *schedule.SpecialSchedule) (uuid.UUID, error)
	DeleteSpecialSchedule(ctx context.Context, id uuid.UUID) error
}

type ScheduleCommands interface {
	CreateBusinessHour(ctx context.Context, req reqdto.CreateBusinessHourRequest) (uuid.UUID, error)
	UpdateBusinessHour(ctx context.Context, id uuid.UUID, req reqdto.UpdateBusinessHourRequest) error
	DeleteBusinessHour(ctx context.Context, id uuid.UUID) error
	CreateSpecialSchedule(ctx context.Context, req reqdto.CreateSpecialScheduleRequest) (uuid.UUID, error)
	DeleteSpecialSchedule(ctx context.Context, id uuid.UUID) error
}

type scheduleCommandsImpl struct {
	scheduleRepo ScheduleRepository
}

func NewScheduleCommands(scheduleRepo ScheduleRepository) ScheduleCommands {
	return &scheduleCommandsImpl{scheduleRepo: scheduleRepo}
}

func (s *scheduleCommandsImpl) CreateBusinessHour(ctx context.Context, req reqdto.CreateBusinessHourRequest) (uuid.UUID, error) {
	hour, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidScheduleInput)
	}
	return s.scheduleRepo.CreateBusinessHour(ctx, hour)
}

func (s *scheduleCommandsImpl) UpdateBusinessHour(ctx context.Context, id uuid.UUID, req reqdto.UpdateBusinessHourRequest) error {
	existing, err := s.scheduleRepo.FindBusinessHourByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBusinessHourNotFound
		}
		return err
	}

	block, err := req.HourBlockPayload.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrInvalidScheduleInput)
	}
	updated := schedule.ReconstructBusinessHour(
		existing.ID(), time.Weekday(req.Weekday), block, req.IsActive,
		existing.CreatedAt(), existing.UpdatedAt(),
	)
	return s.scheduleRepo.UpdateBusinessHour(ctx, updated)
}

func (s *scheduleCommandsImpl) DeleteBusinessHour(ctx context.Context, id uuid.UUID) error {
	err := s.scheduleRepo.DeleteBusinessHour(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrBusinessHourNotFound
	}
	return err
}

func (s *scheduleCommandsImpl) CreateSpecialSchedule(ctx context.Context, req reqdto.CreateSpecialScheduleRequest) (uuid.UUID, error) {
	special, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidScheduleInput)
	}
	id, err := s.scheduleRepo.CreateSpecialSchedule(ctx, special)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateSpecialSchedule
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (s *scheduleCommandsImpl) DeleteSpecialSchedule(ctx context.Context, id uuid.UUID) error {
	err := s.scheduleRepo.DeleteSpecialSchedule(ctx, id)
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrSpecialScheduleNotFoundW
	}
	return err
}
