package domain

import "context"

type Room struct {
	ID                int
	Name              string
	Rows              int
	Columns           int
	PricingComponents ComponentSet
}

// Seats is derived on every read so it can never drift from the layout.
func (r Room) Seats() int {
	return r.Rows * r.Columns
}

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByName(ctx context.Context, name string) (*Room, error)
	GetAll(ctx context.Context) ([]Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, room *Room) error
	AttachPricingComponent(ctx context.Context, roomID, componentID int) error
}
