package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/ticket-service/api"
)

func (app *Application) CreatePricingComponent(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePricingComponentRequest

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

	component, err := app.pricingService.CreateComponent(r.Context(), input.Name, input.Amount)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	resp := api.PricingComponentResponse{
		Name:   component.Name,
		Amount: component.Amount,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AttachPricingComponent(w http.ResponseWriter, r *http.Request, name string) {
	var input api.AttachPricingComponentRequest

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

	switch input.Target {
	case api.TargetMovie:
		if input.MovieTitle == "" {
			app.badRequestResponse(w, r, fmt.Errorf("movieTitle is required for target %q", input.Target))
			return
		}

		err = app.pricingService.AttachToMovie(r.Context(), name, input.MovieTitle)
	case api.TargetRoom:
		if input.RoomName == "" {
			app.badRequestResponse(w, r, fmt.Errorf("roomName is required for target %q", input.Target))
			return
		}

		err = app.pricingService.AttachToRoom(r.Context(), name, input.RoomName)
	case api.TargetScreening:
		if input.MovieTitle == "" || input.RoomName == "" || input.StartTime == "" {
			app.badRequestResponse(w, r, fmt.Errorf("movieTitle, roomName and startTime are required for target %q", input.Target))
			return
		}

		key, keyErr := screeningKey(input.MovieTitle, input.RoomName, input.StartTime)
		if keyErr != nil {
			app.badRequestResponse(w, r, keyErr)
			return
		}

		err = app.pricingService.AttachToScreening(r.Context(), name, key)
	}

	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetBasePrice(w http.ResponseWriter, r *http.Request) {
	price, err := app.pricingService.BasePrice(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BasePriceResponse{Price: price}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateBasePrice(w http.ResponseWriter, r *http.Request) {
	var input api.UpdateBasePriceRequest

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

	err = app.pricingService.UpdateBasePrice(r.Context(), input.Price)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.BasePriceResponse{Price: input.Price}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
