package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// logError logs err with a fresh error id and the request coordinates, and
// returns the id so the client can quote it.
func (app *application) logError(r *http.Request, level string, msg string, err error) string {
	errorID := uuid.NewString()
	kv := []any{
		"error_id", errorID,
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	}
	if level == "warn" {
		app.logger.Warnw(msg, kv...)
	} else {
		app.logger.Errorw(msg, kv...)
	}
	return errorID
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	errorID := app.logError(r, "error", "internal error", err)
	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem", errorID)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorID := app.logError(r, "warn", "bad request", err)
	writeJSONError(w, http.StatusBadRequest, err.Error(), errorID)
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	errorID := app.logError(r, "warn", "forbidden", fmt.Errorf("user id does not match token subject"))
	writeJSONError(w, http.StatusForbidden, "forbidden", errorID)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusNotFound, "not found", "")
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorID := app.logError(r, "warn", "unauthorized error", err)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized", errorID)
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorID := app.logError(r, "warn", "unauthorized basic error", err)
	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized", errorID)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path, "ip", r.RemoteAddr)

	secs := int(retryAfter.Seconds())
	if secs < 1 {
		secs = 1
	}
	w.Header().Set("Retry-After", fmt.Sprintf("%d", secs))
	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String(), "")
}
