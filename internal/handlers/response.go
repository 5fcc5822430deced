package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

// Client-facing error details.
const (
	detailInvalidBody          = "Invalid request body"
	detailInvalidStatus        = "Invalid status"
	detailInvalidApplicationID = "Invalid application id"
	detailApplicationNotFound  = "Application not found"
	detailDuplicateApplication = "Application with this company and role already exists"
	detailUnauthorized         = "Could not validate credentials"
	detailInternal             = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

// decodeBody decodes a JSON request body and writes a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, models.ErrUnknownStatus):
		writeError(w, http.StatusBadRequest, detailInvalidStatus)
	default:
		writeError(w, http.StatusBadRequest, detailInvalidBody)
	}
	return false
}

// userIDFromRequest returns the id stored by AuthMiddleware.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, detailUnauthorized)
	}
	return userID, ok
}

func applicationIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, detailInvalidApplicationID)
		return 0, false
	}
	return id, true
}

// writeApplicationError maps application service errors to HTTP responses.
func writeApplicationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case services.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, detailUnauthorized)
	case errors.Is(err, services.ErrApplicationNotFound):
		writeError(w, http.StatusNotFound, detailApplicationNotFound)
	case errors.Is(err, services.ErrDuplicateCompanyRole):
		writeError(w, http.StatusConflict, detailDuplicateApplication)
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.GetRequestIDFromContext(r.Context()),
			"err", err,
		)
		writeError(w, http.StatusInternalServerError, detailInternal)
	}
}
