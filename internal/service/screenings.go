package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
)

type ScreeningService struct {
	screenings domain.ScreeningRepository
	movies     domain.MovieRepository
	rooms      domain.RoomRepository
	sessions   domain.SessionProvider
	logger     *slog.Logger
}

func NewScreeningService(
	screenings domain.ScreeningRepository,
	movies domain.MovieRepository,
	rooms domain.RoomRepository,
	sessions domain.SessionProvider,
	logger *slog.Logger) *ScreeningService {

	return &ScreeningService{
		screenings: screenings,
		movies:     movies,
		rooms:      rooms,
		sessions:   sessions,
		logger:     logger.With("service", "screening"),
	}
}

func (s *ScreeningService) Create(ctx context.Context, movieTitle, roomName string, start time.Time) (*domain.Screening, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.GetByTitle(ctx, movieTitle)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "movie"}
		}

		return nil, err
	}

	room, err := s.rooms.GetByName(ctx, roomName)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "room"}
		}

		return nil, err
	}

	screening := domain.Screening{
		MovieID:   movie.ID,
		RoomID:    room.ID,
		Movie:     *movie,
		Room:      *room,
		StartTime: start,
	}

	err = s.screenings.CreateChecked(ctx, &screening, func(existing []domain.Screening) error {
		return domain.CheckScheduleConflict(start, existing)
	})
	if err != nil {
		if errors.Is(err, domain.ErrScheduleConflict) {
			s.logger.Warn("screening rejected", "room", roomName, "start", start, "reason", err.Error())
		}

		return nil, err
	}

	s.logger.Info("screening created", "movie", movieTitle, "room", roomName, "start", start)

	return &screening, nil
}

func (s *ScreeningService) GetAll(ctx context.Context) ([]domain.Screening, error) {
	return s.screenings.GetAll(ctx)
}

func (s *ScreeningService) Delete(ctx context.Context, key domain.ScreeningKey) (*domain.Screening, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	screening, err := getScreening(ctx, s.screenings, key)
	if err != nil {
		return nil, err
	}

	err = s.screenings.Delete(ctx, screening)
	if err != nil {
		return nil, err
	}

	return screening, nil
}

func getScreening(ctx context.Context, screenings domain.ScreeningRepository, key domain.ScreeningKey) (*domain.Screening, error) {
	screening, err := screenings.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "screening"}
		}

		return nil, err
	}

	return screening, nil
}
