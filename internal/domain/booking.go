package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID          int
	Reference   uuid.UUID
	UserID      int
	Username    string
	ScreeningID int
	Screening   Screening
	Seats       []string
	Price       int
	CreatedAt   time.Time
}

type BookingRepository interface {
	// Create persists the booking and its seats atomically. A seat already
	// booked for the same screening fails the whole insert with ErrSeatTaken.
	Create(ctx context.Context, booking *Booking) error
	IsSeatTaken(ctx context.Context, screeningID int, seat string) (bool, error)
	GetAllByUserId(ctx context.Context, userID int) ([]Booking, error)
}

// SeatLocker reserves (screening, seat) pairs across processes for the
// duration of a booking attempt.
type SeatLocker interface {
	Lock(ctx context.Context, screeningID int, seats []string) (release func(), err error)
}
