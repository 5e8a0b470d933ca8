package main

import (
	"errors"
	"net/http"

	"github.com/manas-solves/news-backend/internal/data"
)

func (app *application) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(), "method", r.Method, "url", r.URL.RequestURI())
}

// errorResponse sends a JSON error body of the form {"msg": message} with the
// given status code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{"msg": message}
	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// serverErrorResponse logs the detailed error and sends a generic 500 response.
func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

// notFoundResponse is used for paths that match no route.
func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, "Path Not Found")
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// badRequestResponse sends a 400 with the fixed "Bad Request" message. The
// underlying reason is only logged.
func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Debug("bad request", "method", r.Method, "url", r.URL.RequestURI(), "error", err)
	app.errorResponse(w, r, http.StatusBadRequest, "Bad Request")
}

func (app *application) recordNotFoundResponse(w http.ResponseWriter, r *http.Request, err *data.NotFoundError) {
	app.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (app *application) referencedEntityNotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Debug("referenced entity not found", "method", r.Method, "url", r.URL.RequestURI(), "error", err)
	app.errorResponse(w, r, http.StatusNotFound, "Referenced Entity Not Found")
}

// storeErrorResponse classifies an error returned by the data layer and sends
// the matching response. Unrecognised errors are 500s.
func (app *application) storeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var notFoundErr *data.NotFoundError

	switch {
	case errors.Is(err, data.ErrInvalidInput):
		app.badRequestResponse(w, r, err)
	case errors.As(err, &notFoundErr):
		app.recordNotFoundResponse(w, r, notFoundErr)
	case errors.Is(err, data.ErrReferencedEntityNotFound):
		app.referencedEntityNotFoundResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
