package main

import (
	"net/http"
)

func (app *application) listTopicsHandler(w http.ResponseWriter, r *http.Request) {
	topics, err := app.modelStore.Topics.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"topics": topics}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
