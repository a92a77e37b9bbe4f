package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/ticket-service/api"
	"github.com/metinatakli/ticket-service/internal/domain"
)

func (app *Application) SignUp(w http.ResponseWriter, r *http.Request) {
	var input api.SignUpRequest

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

	user, err := app.userService.SignUp(r.Context(), input.Username, input.Password)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	resp := api.UserResponse{
		Id:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SignInRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("sign in validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	identity, err := app.userService.SignIn(r.Context(), input.Username, input.Password, input.Privileged)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	resp := api.UserResponse{
		Id:       identity.UserID,
		Username: identity.Username,
		Role:     string(identity.Role),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) SignOut(w http.ResponseWriter, r *http.Request) {
	err := app.userService.SignOut(r.Context())
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DescribeAccount reports who is signed in. Regular users also get the list
// of their previous bookings.
func (app *Application) DescribeAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := app.userService.Current(r.Context())
	if !ok {
		err := app.writeJSON(w, http.StatusOK, api.AccountResponse{SignedIn: false}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.AccountResponse{
		SignedIn: true,
		Username: identity.Username,
		Role:     string(identity.Role),
	}

	if !identity.IsAdmin() {
		bookings, err := app.bookingService.GetBookingsByUser(r.Context(), identity.Username)
		if err != nil && !errors.Is(err, domain.ErrNotAuthenticated) {
			app.serverErrorResponse(w, r, err)
			return
		}

		resp.Bookings = make([]api.BookingResponse, 0, len(bookings))
		for _, b := range bookings {
			resp.Bookings = append(resp.Bookings, toBookingResponse(b))
		}
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
