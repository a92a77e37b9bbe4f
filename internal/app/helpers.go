package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/metinatakli/ticket-service/api"
	"github.com/metinatakli/ticket-service/internal/domain"
	appvalidator "github.com/metinatakli/ticket-service/internal/validator"
)

const maxRequestBytes = 1_048_576

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func parseStartTime(value string) (time.Time, error) {
	t, err := time.Parse(appvalidator.DateTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start time must be in %q form", domain.ErrInvalidInput, appvalidator.DateTimeLayout)
	}

	return t, nil
}

func formatTime(t time.Time) string {
	return t.Format(appvalidator.DateTimeLayout)
}

func screeningKey(movieTitle, roomName, startTime string) (domain.ScreeningKey, error) {
	start, err := parseStartTime(startTime)
	if err != nil {
		return domain.ScreeningKey{}, err
	}

	return domain.ScreeningKey{
		MovieTitle: movieTitle,
		RoomName:   roomName,
		StartTime:  start,
	}, nil
}

func toMovieResponse(m domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Title:   m.Title,
		Genre:   m.Genre,
		Runtime: m.Runtime,
	}
}

func toRoomResponse(r domain.Room) api.RoomResponse {
	return api.RoomResponse{
		Name:    r.Name,
		Rows:    r.Rows,
		Columns: r.Columns,
		Seats:   r.Seats(),
	}
}

func toScreeningResponse(s domain.Screening) api.ScreeningResponse {
	return api.ScreeningResponse{
		MovieTitle: s.Movie.Title,
		Genre:      s.Movie.Genre,
		Runtime:    s.Movie.Runtime,
		RoomName:   s.Room.Name,
		StartTime:  formatTime(s.StartTime),
	}
}

func toBookingResponse(b domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Reference:  b.Reference,
		MovieTitle: b.Screening.Movie.Title,
		RoomName:   b.Screening.Room.Name,
		StartTime:  formatTime(b.Screening.StartTime),
		Seats:      b.Seats,
		Price:      b.Price,
		CreatedAt:  b.CreatedAt,
	}
}
