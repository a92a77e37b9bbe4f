package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/metinatakli/ticket-service/internal/domain"
)

type PricingService struct {
	components domain.PricingComponentRepository
	movies     domain.MovieRepository
	rooms      domain.RoomRepository
	screenings domain.ScreeningRepository
	basePrice  domain.BasePriceStore
	sessions   domain.SessionProvider
	logger     *slog.Logger
}

func NewPricingService(
	components domain.PricingComponentRepository,
	movies domain.MovieRepository,
	rooms domain.RoomRepository,
	screenings domain.ScreeningRepository,
	basePrice domain.BasePriceStore,
	sessions domain.SessionProvider,
	logger *slog.Logger) *PricingService {

	return &PricingService{
		components: components,
		movies:     movies,
		rooms:      rooms,
		screenings: screenings,
		basePrice:  basePrice,
		sessions:   sessions,
		logger:     logger.With("service", "pricing"),
	}
}

func (s *PricingService) CreateComponent(ctx context.Context, name string, amount int) (*domain.PricingComponent, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	component := domain.PricingComponent{Name: name, Amount: amount}

	err = s.components.Create(ctx, &component)
	if err != nil {
		return nil, err
	}

	return &component, nil
}

func (s *PricingService) BasePrice(ctx context.Context) (int, error) {
	return s.basePrice.Get(ctx)
}

func (s *PricingService) UpdateBasePrice(ctx context.Context, price int) error {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return err
	}

	err = s.basePrice.Set(ctx, price)
	if err != nil {
		return fmt.Errorf("update base price: %w", err)
	}

	s.logger.Info("base price updated", "price", price)

	return nil
}

func (s *PricingService) AttachToMovie(ctx context.Context, componentName, movieTitle string) error {
	component, err := s.prepareAttach(ctx, componentName)
	if err != nil {
		return err
	}

	movie, err := s.movies.GetByTitle(ctx, movieTitle)
	if err != nil {
		return notFound(err, "movie")
	}

	if !movie.PricingComponents.Add(component.ID) {
		return nil
	}

	return s.movies.AttachPricingComponent(ctx, movie.ID, component.ID)
}

func (s *PricingService) AttachToRoom(ctx context.Context, componentName, roomName string) error {
	component, err := s.prepareAttach(ctx, componentName)
	if err != nil {
		return err
	}

	room, err := s.rooms.GetByName(ctx, roomName)
	if err != nil {
		return notFound(err, "room")
	}

	if !room.PricingComponents.Add(component.ID) {
		return nil
	}

	return s.rooms.AttachPricingComponent(ctx, room.ID, component.ID)
}

func (s *PricingService) AttachToScreening(ctx context.Context, componentName string, key domain.ScreeningKey) error {
	component, err := s.prepareAttach(ctx, componentName)
	if err != nil {
		return err
	}

	screening, err := getScreening(ctx, s.screenings, key)
	if err != nil {
		return err
	}

	if !screening.PricingComponents.Add(component.ID) {
		return nil
	}

	return s.screenings.AttachPricingComponent(ctx, screening.ID, component.ID)
}

func (s *PricingService) prepareAttach(ctx context.Context, componentName string) (*domain.PricingComponent, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	component, err := s.components.GetByName(ctx, componentName)
	if err != nil {
		return nil, notFound(err, "pricing component")
	}

	return component, nil
}

// CalculatePrice quotes the price of seatCount seats for the screening
// identified by key.
func (s *PricingService) CalculatePrice(ctx context.Context, key domain.ScreeningKey, seatCount int) (int, error) {
	screening, err := getScreening(ctx, s.screenings, key)
	if err != nil {
		return 0, err
	}

	return s.Price(ctx, screening, seatCount)
}

// Price computes the total for an already resolved screening using the
// current base price.
func (s *PricingService) Price(ctx context.Context, screening *domain.Screening, seatCount int) (int, error) {
	basePrice, err := s.basePrice.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("read base price: %w", err)
	}

	sets := []domain.ComponentSet{
		screening.Movie.PricingComponents,
		screening.Room.PricingComponents,
		screening.PricingComponents,
	}

	var ids []int
	for _, set := range sets {
		ids = append(ids, set...)
	}

	byId := make(map[int]domain.PricingComponent)

	if len(ids) > 0 {
		components, err := s.components.GetByIDs(ctx, ids)
		if err != nil {
			return 0, fmt.Errorf("load pricing components: %w", err)
		}

		for _, c := range components {
			byId[c.ID] = c
		}
	}

	resolved := make([][]domain.PricingComponent, len(sets))
	for i, set := range sets {
		for _, id := range set {
			if c, ok := byId[id]; ok {
				resolved[i] = append(resolved[i], c)
			}
		}
	}

	return domain.CalculatePrice(basePrice, seatCount, resolved...), nil
}

func notFound(err error, entity string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return &domain.NotFoundError{Entity: entity}
	}

	return err
}
