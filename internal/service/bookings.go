package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/ticket-service/internal/domain"
)

type BookingService struct {
	bookings   domain.BookingRepository
	screenings domain.ScreeningRepository
	pricing    *PricingService
	locker     domain.SeatLocker
	sessions   domain.SessionProvider
	logger     *slog.Logger
	now        func() time.Time
}

func NewBookingService(
	bookings domain.BookingRepository,
	screenings domain.ScreeningRepository,
	pricing *PricingService,
	locker domain.SeatLocker,
	sessions domain.SessionProvider,
	logger *slog.Logger) *BookingService {

	if locker == nil {
		locker = NopSeatLocker{}
	}

	return &BookingService{
		bookings:   bookings,
		screenings: screenings,
		pricing:    pricing,
		locker:     locker,
		sessions:   sessions,
		logger:     logger.With("service", "booking"),
		now:        time.Now,
	}
}

// CreateBooking books seats for the screening identified by key on behalf of
// username, who must be the signed in caller. Seats are checked in order and
// the first one already booked is reported.
func (s *BookingService) CreateBooking(
	ctx context.Context,
	username string,
	key domain.ScreeningKey,
	seats []string) (*domain.Booking, error) {

	identity, err := requireCaller(ctx, s.sessions, username)
	if err != nil {
		return nil, err
	}

	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: at least one seat is required", domain.ErrInvalidInput)
	}

	if dup := firstDuplicate(seats); dup != "" {
		return nil, fmt.Errorf("%w: seat (%s) is listed more than once", domain.ErrInvalidInput, dup)
	}

	screening, err := getScreening(ctx, s.screenings, key)
	if err != nil {
		return nil, err
	}

	release, err := s.locker.Lock(ctx, screening.ID, seats)
	if err != nil {
		if errors.Is(err, domain.ErrSeatTaken) {
			s.logger.Warn("seats are being booked concurrently", "screeningId", screening.ID, "seats", seats)
		}

		return nil, err
	}
	defer release()

	for _, seat := range seats {
		taken, err := s.bookings.IsSeatTaken(ctx, screening.ID, seat)
		if err != nil {
			return nil, err
		}

		if taken {
			return nil, &domain.SeatTakenError{Seat: seat}
		}
	}

	price, err := s.pricing.Price(ctx, screening, len(seats))
	if err != nil {
		return nil, err
	}

	booking := domain.Booking{
		Reference:   uuid.New(),
		UserID:      identity.UserID,
		Username:    identity.Username,
		ScreeningID: screening.ID,
		Screening:   *screening,
		Seats:       slices.Clone(seats),
		Price:       price,
		CreatedAt:   s.now(),
	}

	err = s.bookings.Create(ctx, &booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		"reference", booking.Reference,
		"username", username,
		"screeningId", screening.ID,
		"seats", len(seats),
		"price", price)

	return &booking, nil
}

// GetBookingsByUser lists the caller's bookings. An empty result is not an
// error.
func (s *BookingService) GetBookingsByUser(ctx context.Context, username string) ([]domain.Booking, error) {
	identity, err := requireCaller(ctx, s.sessions, username)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.GetAllByUserId(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}

	return bookings, nil
}

func firstDuplicate(seats []string) string {
	seen := make(map[string]struct{}, len(seats))

	for _, seat := range seats {
		if _, ok := seen[seat]; ok {
			return seat
		}

		seen[seat] = struct{}{}
	}

	return ""
}

// NopSeatLocker never contends. It is used when no Redis instance is
// configured and the store's uniqueness constraint is the only guard.
type NopSeatLocker struct{}

func (NopSeatLocker) Lock(context.Context, int, []string) (func(), error) {
	return func() {}, nil
}
