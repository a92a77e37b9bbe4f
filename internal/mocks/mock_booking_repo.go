package mocks

import (
	"context"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) IsSeatTaken(ctx context.Context, screeningID int, seat string) (bool, error) {
	args := m.Called(ctx, screeningID, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) GetAllByUserId(ctx context.Context, userID int) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockSeatLocker struct {
	mock.Mock
}

func (m *MockSeatLocker) Lock(ctx context.Context, screeningID int, seats []string) (func(), error) {
	args := m.Called(ctx, screeningID, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}
