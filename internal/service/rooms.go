package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/metinatakli/ticket-service/internal/domain"
)

type RoomService struct {
	rooms    domain.RoomRepository
	sessions domain.SessionProvider
	logger   *slog.Logger
}

func NewRoomService(rooms domain.RoomRepository, sessions domain.SessionProvider, logger *slog.Logger) *RoomService {
	return &RoomService{
		rooms:    rooms,
		sessions: sessions,
		logger:   logger.With("service", "room"),
	}
}

func (s *RoomService) Create(ctx context.Context, name string, rows, columns int) (*domain.Room, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	room := domain.Room{Name: name, Rows: rows, Columns: columns}

	err = s.rooms.Create(ctx, &room)
	if err != nil {
		return nil, err
	}

	s.logger.Info("room created", "name", name, "seats", room.Seats())

	return &room, nil
}

func (s *RoomService) GetAll(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.GetAll(ctx)
}

func (s *RoomService) Update(ctx context.Context, name string, rows, columns int) (*domain.Room, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	room, err := s.getByName(ctx, name)
	if err != nil {
		return nil, err
	}

	room.Rows = rows
	room.Columns = columns

	err = s.rooms.Update(ctx, room)
	if err != nil {
		return nil, err
	}

	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, name string) (*domain.Room, error) {
	err := requireAdmin(ctx, s.sessions)
	if err != nil {
		return nil, err
	}

	room, err := s.getByName(ctx, name)
	if err != nil {
		return nil, err
	}

	err = s.rooms.Delete(ctx, room)
	if err != nil {
		return nil, err
	}

	return room, nil
}

func (s *RoomService) getByName(ctx context.Context, name string) (*domain.Room, error) {
	room, err := s.rooms.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "room"}
		}

		return nil, err
	}

	return room, nil
}
