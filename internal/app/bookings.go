package app

import (
	"net/http"

	"github.com/metinatakli/ticket-service/api"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	key, err := screeningKey(input.MovieTitle, input.RoomName, input.StartTime)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	identity, _ := app.sessions.CurrentIdentity(r.Context())

	booking, err := app.bookingService.CreateBooking(r.Context(), identity.Username, key, input.Seats)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("movie", booking.Screening.Movie.Title),
		attribute.String("room", booking.Screening.Room.Name),
	)
	app.metrics.bookingsCreated.Add(r.Context(), 1, attrs)
	app.metrics.seatsBooked.Add(r.Context(), int64(len(booking.Seats)), attrs)
	app.metrics.bookingPrice.Record(r.Context(), int64(booking.Price), attrs)

	logger.Info("seats booked", "reference", booking.Reference, "price", booking.Price)

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(*booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListBookings(w http.ResponseWriter, r *http.Request) {
	identity, _ := app.sessions.CurrentIdentity(r.Context())

	bookings, err := app.bookingService.GetBookingsByUser(r.Context(), identity.Username)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	resp := make([]api.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
