package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("user is not authenticated")
	ErrNotAuthorized    = errors.New("admin privileges are required")
	ErrRecordNotFound   = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrScheduleConflict = errors.New("schedule conflict")
	ErrSeatTaken        = errors.New("seat is already taken")
	ErrInUse            = errors.New("record is referenced by bookings")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidLogin     = errors.New("invalid username or password")
)

// NotFoundError names the entity a lookup by natural key failed for.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Entity)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRecordNotFound
}

// InUseError is returned when deleting an entity would remove bookings,
// either directly or through the screenings it cascades to.
type InUseError struct {
	Entity string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s has bookings and cannot be deleted", e.Entity)
}

func (e *InUseError) Unwrap() error {
	return ErrInUse
}

type ConflictReason string

const (
	ConflictOverlap     ConflictReason = "overlap"
	ConflictBreakPeriod ConflictReason = "break period"
)

type ScheduleConflictError struct {
	Reason ConflictReason
}

func (e *ScheduleConflictError) Error() string {
	switch e.Reason {
	case ConflictBreakPeriod:
		return "this would start in the break period after another screening in this room"
	default:
		return "there is an overlapping screening"
	}
}

func (e *ScheduleConflictError) Unwrap() error {
	return ErrScheduleConflict
}

// SeatTakenError carries the first seat found already booked. Seat is empty
// when the collision was only detected by the store's uniqueness constraint.
type SeatTakenError struct {
	Seat string
}

func (e *SeatTakenError) Error() string {
	if e.Seat == "" {
		return "a selected seat is already taken"
	}

	return fmt.Sprintf("seat (%s) is already taken", e.Seat)
}

func (e *SeatTakenError) Unwrap() error {
	return ErrSeatTaken
}
