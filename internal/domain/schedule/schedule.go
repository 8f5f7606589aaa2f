// Package schedule holds the shop's opening structure: weekly recurring hour
// blocks and date-specific special schedules that close the shop or replace
// the hours for that day.
package schedule

import (
	"errors"
	"strings"
	"time"

	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
	ErrInvalidTime       = errors.New("invalid time of day")
	ErrEmptyLabel        = errors.New("hour type label cannot be empty")
	ErrClosedWithHours   = errors.New("closed day cannot carry hour blocks")
	ErrInvalidDate       = errors.New("invalid date")
)

// HourBlock is one labeled open range, e.g. "lunch" 11:00-14:00.
type HourBlock struct {
	label string
	start wallclock.TimeOfDay
	end   wallclock.TimeOfDay
}

func NewHourBlock(label string, start, end wallclock.TimeOfDay) (HourBlock, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return HourBlock{}, ErrEmptyLabel
	}
	if !start.IsValid() || !end.IsValid() {
		return HourBlock{}, ErrInvalidTime
	}
	if start >= end {
		return HourBlock{}, ErrInvalidTimeRange
	}

	return HourBlock{label: label, start: start, end: end}, nil
}

func (b HourBlock) Label() string              { return b.label }
func (b HourBlock) Start() wallclock.TimeOfDay { return b.start }
func (b HourBlock) End() wallclock.TimeOfDay   { return b.end }

// BusinessHour is one weekly recurring hour block on a weekday.
type BusinessHour struct {
	id        uuid.UUID
	weekday   time.Weekday
	block     HourBlock
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewBusinessHour(weekday time.Weekday, block HourBlock) *BusinessHour {
	return &BusinessHour{
		id:       uuid.New(),
		weekday:  weekday,
		block:    block,
		isActive: true,
	}
}

func ReconstructBusinessHour(id uuid.UUID, weekday time.Weekday, block HourBlock, isActive bool, createdAt, updatedAt time.Time) *BusinessHour {
	return &BusinessHour{
		id:        id,
		weekday:   weekday,
		block:     block,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *BusinessHour) ID() uuid.UUID         { return h.id }
func (h *BusinessHour) Weekday() time.Weekday { return h.weekday }
func (h *BusinessHour) Block() HourBlock      { return h.block }
func (h *BusinessHour) IsActive() bool        { return h.isActive }
func (h *BusinessHour) CreatedAt() time.Time  { return h.createdAt }
func (h *BusinessHour) UpdatedAt() time.Time  { return h.updatedAt }

// SpecialSchedule overrides one calendar day: either a closed day, or a
// replacement set of hour blocks for that day.
type SpecialSchedule struct {
	id        uuid.UUID
	date      wallclock.Date
	closed    bool
	blocks    []HourBlock
	note      string
	createdAt time.Time
	updatedAt time.Time
}

func NewSpecialSchedule(date wallclock.Date, closed bool, blocks []HourBlock, note string) (*SpecialSchedule, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if closed && len(blocks) > 0 {
		return nil, ErrClosedWithHours
	}

	return &SpecialSchedule{
		id:     uuid.New(),
		date:   date,
		closed: closed,
		blocks: blocks,
		note:   strings.TrimSpace(note),
	}, nil
}

func ReconstructSpecialSchedule(id uuid.UUID, date wallclock.Date, closed bool, blocks []HourBlock, note string, createdAt, updatedAt time.Time) *SpecialSchedule {
	return &SpecialSchedule{
		id:        id,
		date:      date,
		closed:    closed,
		blocks:    blocks,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *SpecialSchedule) ID() uuid.UUID        { return s.id }
func (s *SpecialSchedule) Date() wallclock.Date { return s.date }
func (s *SpecialSchedule) IsClosed() bool       { return s.closed }
func (s *SpecialSchedule) Blocks() []HourBlock  { return s.blocks }
func (s *SpecialSchedule) Note() string         { return s.note }
func (s *SpecialSchedule) CreatedAt() time.Time { return s.createdAt }
func (s *SpecialSchedule) UpdatedAt() time.Time { return s.updatedAt }

// EffectiveBlocks resolves the open hour blocks for one date. A special
// schedule for the date wins outright: closed means no blocks, otherwise its
// blocks replace the weekly ones. Without a special schedule the active
// weekly blocks for that weekday apply.
func EffectiveBlocks(date wallclock.Date, weekly []*BusinessHour, specials []*SpecialSchedule) []HourBlock {
	for _, s := range specials {
		if s.date != date {
			continue
		}
		if s.closed {
			return nil
		}
		return s.blocks
	}

	var blocks []HourBlock
	for _, h := range weekly {
		if h.isActive && h.weekday == date.Weekday() {
			blocks = append(blocks, h.block)
		}
	}
	return blocks
}
