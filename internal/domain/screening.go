package domain

import (
	"context"
	"time"
)

// BreakDuration is the cleaning window that follows every screening before
// another one may start in the same room.
const BreakDuration = 10 * time.Minute

// ScreeningKey is the natural key of a screening.
type ScreeningKey struct {
	MovieTitle string
	RoomName   string
	StartTime  time.Time
}

type Screening struct {
	ID                int
	MovieID           int
	RoomID            int
	Movie             Movie
	Room              Room
	StartTime         time.Time
	PricingComponents ComponentSet
}

func (s Screening) Key() ScreeningKey {
	return ScreeningKey{
		MovieTitle: s.Movie.Title,
		RoomName:   s.Room.Name,
		StartTime:  s.StartTime,
	}
}

func (s Screening) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.Movie.Runtime) * time.Minute)
}

func (s Screening) BreakEnd() time.Time {
	return s.EndTime().Add(BreakDuration)
}

// CheckScheduleConflict decides whether a screening starting at start may be
// placed in a room already holding existing. Every existing screening is
// checked and the first conflict found is returned.
func CheckScheduleConflict(start time.Time, existing []Screening) error {
	for _, s := range existing {
		end := s.EndTime()

		if !start.Before(s.StartTime) && start.Before(end) {
			return &ScheduleConflictError{Reason: ConflictOverlap}
		}

		if !start.Before(end) && start.Before(s.BreakEnd()) {
			return &ScheduleConflictError{Reason: ConflictBreakPeriod}
		}
	}

	return nil
}

type ScreeningRepository interface {
	// CreateChecked runs check against the screenings already in the room and
	// inserts screening only if check returns nil. The read and the insert are
	// serialized per room.
	CreateChecked(ctx context.Context, screening *Screening, check func(existing []Screening) error) error
	GetByKey(ctx context.Context, key ScreeningKey) (*Screening, error)
	GetAll(ctx context.Context) ([]Screening, error)
	Delete(ctx context.Context, screening *Screening) error
	AttachPricingComponent(ctx context.Context, screeningID, componentID int) error
}
