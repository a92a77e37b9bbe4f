package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/ticket-service/api"
	"github.com/metinatakli/ticket-service/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func (app *Application) ListScreenings(w http.ResponseWriter, r *http.Request) {
	screenings, err := app.screeningService.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ScreeningResponse, 0, len(screenings))
	for _, s := range screenings {
		resp = append(resp, toScreeningResponse(s))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var input api.ScreeningKey

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

	start, err := parseStartTime(input.StartTime)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	screening, err := app.screeningService.Create(r.Context(), input.MovieTitle, input.RoomName, start)
	if err != nil {
		var conflict *domain.ScheduleConflictError
		if errors.As(err, &conflict) {
			app.metrics.scheduleConflicts.Add(r.Context(), 1,
				metric.WithAttributes(attribute.String("reason", string(conflict.Reason))))
		}

		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toScreeningResponse(*screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteScreening identifies the screening by the movie, room and start
// query parameters.
func (app *Application) DeleteScreening(w http.ResponseWriter, r *http.Request, params api.DeleteScreeningParams) {
	key, ok := app.readScreeningKeyQuery(w, r, params.Movie, params.Room, params.Start)
	if !ok {
		return
	}

	_, err := app.screeningService.Delete(r.Context(), key)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetScreeningPrice(w http.ResponseWriter, r *http.Request, params api.GetScreeningPriceParams) {
	key, ok := app.readScreeningKeyQuery(w, r, params.Movie, params.Room, params.Start)
	if !ok {
		return
	}

	if params.Seats < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("seats must be a positive integer"))
		return
	}

	price, err := app.pricingService.CalculatePrice(r.Context(), key, params.Seats)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	resp := api.PriceResponse{
		MovieTitle: key.MovieTitle,
		RoomName:   key.RoomName,
		StartTime:  formatTime(key.StartTime),
		Seats:      params.Seats,
		Price:      price,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readScreeningKeyQuery validates the query form of a screening key the same
// way the body form is validated.
func (app *Application) readScreeningKeyQuery(w http.ResponseWriter, r *http.Request, movie, room, start string) (domain.ScreeningKey, bool) {
	input := api.ScreeningKey{
		MovieTitle: movie,
		RoomName:   room,
		StartTime:  start,
	}

	err := app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return domain.ScreeningKey{}, false
	}

	key, err := screeningKey(input.MovieTitle, input.RoomName, input.StartTime)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return domain.ScreeningKey{}, false
	}

	return key, true
}
