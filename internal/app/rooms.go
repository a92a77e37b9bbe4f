package app

import (
	"net/http"

	"github.com/metinatakli/ticket-service/api"
)

func (app *Application) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := app.roomService.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		resp = append(resp, toRoomResponse(room))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var input api.CreateRoomRequest

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

	room, err := app.roomService.Create(r.Context(), input.Name, input.Rows, input.Columns)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toRoomResponse(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateRoom(w http.ResponseWriter, r *http.Request, name string) {
	var input api.UpdateRoomRequest

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

	room, err := app.roomService.Update(r.Context(), name, input.Rows, input.Columns)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toRoomResponse(*room), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteRoom(w http.ResponseWriter, r *http.Request, name string) {
	_, err := app.roomService.Delete(r.Context(), name)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
