package domain

import "context"

type Movie struct {
	ID                int
	Title             string
	Genre             string
	Runtime           int
	PricingComponents ComponentSet
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetByTitle(ctx context.Context, title string) (*Movie, error)
	GetAll(ctx context.Context) ([]Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, movie *Movie) error
	AttachPricingComponent(ctx context.Context, movieID, componentID int) error
}
