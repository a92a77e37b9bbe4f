package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/ticket-service/internal/domain"
)

type MovieService struct {
	movies   domain.MovieRepository
	sessions domain.SessionProvider
	logger   *slog.Logger
}

func NewMovieService(movies domain.MovieRepository, sessions domain.SessionProvider, logger *slog.Logger) *MovieService {
	return &MovieService{
		movies:   movies,
		sessions: sessions,
		logger:   logger.With("service", "movie"),
	}
}

func (s *MovieService) Create(ctx context.Context, title, genre string, runtime int) (*domain.Movie, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	movie := domain.Movie{Title: title, Genre: genre, Runtime: runtime}

	err = s.movies.Create(ctx, &movie)
	if err != nil {
		return nil, err
	}

	s.logger.Info("movie created", "title", title)

	return &movie, nil
}

func (s *MovieService) GetAll(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.GetAll(ctx)
}

func (s *MovieService) Update(ctx context.Context, title, genre string, runtime int) (*domain.Movie, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	movie, err := s.getByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	movie.Genre = genre
	movie.Runtime = runtime

	err = s.movies.Update(ctx, movie)
	if err != nil {
		return nil, err
	}

	return movie, nil
}

// Delete removes the movie without checking for screenings that reference it.
func (s *MovieService) Delete(ctx context.Context, title string) (*domain.Movie, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	movie, err := s.getByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	err = s.movies.Delete(ctx, movie)
	if err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieService) getByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	movie, err := s.movies.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "movie"}
		}

		return nil, err
	}

	return movie, nil
}
