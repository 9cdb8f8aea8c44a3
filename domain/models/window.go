package models

import (
	"errors"
	"time"
)

// ErrInvalidWindow is returned when an explicit window override has
// start >= end.
var ErrInvalidWindow = errors.New("startTime must be earlier than endTime")

// EndDateFor derives a task's end date from its creation time and duration
// in hours. Every mutator that touches the time window goes through this
// package so the stored fields cannot drift apart.
func EndDateFor(createdAt time.Time, durationHours float64) time.Time {
	return createdAt.Add(time.Duration(durationHours * float64(time.Hour)))
}

// InitWindow sets the creation-time window: CreatedAt = now,
// EndDate = now + duration hours.
func (t *Task) InitWindow(now time.Time, durationHours float64) {
	t.CreatedAt = now
	t.Duration = durationHours
	t.EndDate = EndDateFor(now, durationHours)
}

// SetWindow overrides the window with explicit bounds. Duration is recomputed
// from the new bounds so it stays consistent with them.
func (t *Task) SetWindow(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidWindow
	}
	t.CreatedAt = start
	t.EndDate = end
	t.Duration = end.Sub(start).Hours()
	return nil
}
