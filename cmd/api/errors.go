package main

import (
	"errors"
	"net/http"

	"masterneo/internal/domain/experiences"
	"masterneo/internal/domain/jobs"
	"masterneo/internal/domain/reviews"
	"masterneo/internal/domain/talents"
	"masterneo/internal/images"
	"masterneo/internal/infra/dbx"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("conflict response", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusConflict, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, err.Error())
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter+"s")
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("service unavailable", "method", r.Method, "path", r.URL.Path, "reason", message)

	writeJSONError(w, http.StatusServiceUnavailable, message)
}

// storeErrorResponse maps repository errors to HTTP responses.
func (app *application) storeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, jobs.ErrJobNotFound),
		errors.Is(err, talents.ErrTalentNotFound),
		errors.Is(err, reviews.ErrReviewNotFound),
		errors.Is(err, experiences.ErrExperienceNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, jobs.ErrInvalidSalaryRange),
		errors.Is(err, talents.ErrTooManySkills),
		errors.Is(err, experiences.ErrEndDateWhileWorking),
		errors.Is(err, experiences.ErrEndBeforeStart),
		errors.Is(err, images.ErrUnsupportedType):
		app.badRequestResponse(w, r, err)
	case dbx.IsUniqueViolation(err):
		app.conflictResponse(w, r, errors.New("a record with the same unique value already exists"))
	case dbx.IsForeignKeyViolation(err):
		app.conflictResponse(w, r, errors.New("the record is still referenced or references a missing record"))
	case dbx.IsCheckViolation(err):
		app.badRequestResponse(w, r, errors.New("the record violates constraint "+dbx.ConstraintName(err)))
	default:
		app.internalServerError(w, r, err)
	}
}
