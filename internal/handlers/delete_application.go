package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

//go:generate mockgen -source=delete_application.go -destination=mock_delete_application.go -package=handlers

// ApplicationDeleter defines the interface that the service must implement.
type ApplicationDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// NewDeleteApplicationHandler returns an HTTP handler that removes an application.
// @Summary Delete application
// @Description Permanently removes one of the caller's applications
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.MessageResponse "Deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid application id"
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applications/{id} [delete]
// @Security BearerAuth
func NewDeleteApplicationHandler(svc ApplicationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := applicationIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeApplicationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Deleted"})
	}
}
