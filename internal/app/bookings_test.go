package app

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/ticket-service/api"
	"github.com/metinatakli/ticket-service/internal/domain"
	"github.com/metinatakli/ticket-service/internal/validator"
	"github.com/stretchr/testify/mock"
)

func bookingRequest(seats ...string) api.CreateBookingRequest {
	return api.CreateBookingRequest{
		MovieTitle: "Dune",
		RoomName:   "R1",
		StartTime:  "2023-12-05 13:30",
		Seats:      seats,
	}
}

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name           string
		input          api.CreateBookingRequest
		signedIn       bool
		taken          map[string]bool
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "two seats",
			input:      bookingRequest("5,5", "5,6"),
			signedIn:   true,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "not signed in",
			input:          bookingRequest("5,5"),
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorized,
		},
		{
			name:           "seat taken",
			input:          bookingRequest("5,5", "5,6"),
			signedIn:       true,
			taken:          map[string]bool{"5,6": true},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "seat (5,6) is already taken",
		},
		{
			name:           "malformed seat",
			input:          bookingRequest("5-5"),
			signedIn:       true,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrInvalidSeat,
		},
		{
			name:           "duplicate seat",
			input:          bookingRequest("5,5", "5,5"),
			signedIn:       true,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrDuplicateSeats,
		},
		{
			name:           "no seats",
			input:          bookingRequest(),
			signedIn:       true,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.screenings.On("GetByKey", mock.Anything, testKey()).Return(testScreening(), nil)
			for _, seat := range tt.input.Seats {
				env.bookings.On("IsSeatTaken", mock.Anything, 3, seat).Return(tt.taken[seat], nil)
			}
			env.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

			if tt.signedIn {
				env.signInUser(t)
			}

			resp, body := env.do(t, http.MethodPost, "/bookings", tt.input)
			checkErrorResponse(t, resp, body, tt.wantStatus, tt.wantErrMessage)

			if tt.wantStatus != http.StatusCreated {
				env.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			got := decode[api.BookingResponse](t, body)
			want := api.BookingResponse{
				Reference:  got.Reference,
				MovieTitle: "Dune",
				RoomName:   "R1",
				StartTime:  "2023-12-05 13:30",
				Seats:      []string{"5,5", "5,6"},
				Price:      2 * domain.DefaultBasePrice,
				CreatedAt:  got.CreatedAt,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("booking mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListBookings(t *testing.T) {
	env := newTestEnv(t)
	env.bookings.On("GetAllByUserId", mock.Anything, 42).Return(nil, nil)

	resp, body := env.do(t, http.MethodGet, "/bookings", nil)
	checkErrorResponse(t, resp, body, http.StatusUnauthorized, ErrUnauthorized)

	env.signInUser(t)

	resp, body = env.do(t, http.MethodGet, "/bookings", nil)
	checkErrorResponse(t, resp, body, http.StatusOK, "")
	if string(body) != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}
