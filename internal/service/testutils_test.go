package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/metinatakli/ticket-service/internal/mocks"
	"github.com/metinatakli/ticket-service/internal/session"
	"github.com/stretchr/testify/suite"
)

const (
	testMovieTitle = "Dune"
	testRoomName   = "R1"
	testUsername   = "bob"
	testUserId     = 42
)

var (
	testStart = time.Date(2023, 12, 5, 13, 30, 0, 0, time.UTC)
	testNow   = time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC)

	imax = domain.PricingComponent{ID: 1, Name: "imax", Amount: 200}
)

type ServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	logger     *slog.Logger
	sessions   *session.Local
	movies     *mocks.MockMovieRepo
	rooms      *mocks.MockRoomRepo
	screenings *mocks.MockScreeningRepo
	components *mocks.MockPricingComponentRepo
	bookings   *mocks.MockBookingRepo
	locker     *mocks.MockSeatLocker
	basePrice  *BasePrice
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.sessions = session.NewLocal()
	s.movies = new(mocks.MockMovieRepo)
	s.rooms = new(mocks.MockRoomRepo)
	s.screenings = new(mocks.MockScreeningRepo)
	s.components = new(mocks.MockPricingComponentRepo)
	s.bookings = new(mocks.MockBookingRepo)
	s.locker = new(mocks.MockSeatLocker)
	s.basePrice = NewBasePrice(domain.DefaultBasePrice)
}

func (s *ServiceTestSuite) pricingService() *PricingService {
	return NewPricingService(s.components, s.movies, s.rooms, s.screenings, s.basePrice, s.sessions, s.logger)
}

func (s *ServiceTestSuite) signInAdmin() {
	err := s.sessions.SetCurrentIdentity(s.ctx, domain.Identity{UserID: 1, Username: AdminUsername, Role: domain.RoleAdmin})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) signInUser() {
	err := s.sessions.SetCurrentIdentity(s.ctx, domain.Identity{UserID: testUserId, Username: testUsername, Role: domain.RoleUser})
	s.Require().NoError(err)
}

func testKey() domain.ScreeningKey {
	return domain.ScreeningKey{MovieTitle: testMovieTitle, RoomName: testRoomName, StartTime: testStart}
}

func testMovie() *domain.Movie {
	return &domain.Movie{ID: 1, Title: testMovieTitle, Genre: "sci-fi", Runtime: 120}
}

func testRoom() *domain.Room {
	return &domain.Room{ID: 2, Name: testRoomName, Rows: 10, Columns: 12}
}

func testScreening() *domain.Screening {
	movie := testMovie()
	room := testRoom()

	return &domain.Screening{
		ID:        5,
		MovieID:   movie.ID,
		RoomID:    room.ID,
		Movie:     *movie,
		Room:      *room,
		StartTime: testStart,
	}
}
