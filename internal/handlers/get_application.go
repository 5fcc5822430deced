package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

//go:generate mockgen -source=get_application.go -destination=mock_get_application.go -package=handlers

// ApplicationGetter defines the interface that the service must implement.
type ApplicationGetter interface {
	Get(ctx context.Context, userID, id int64) (*models.Application, error)
}

// NewGetApplicationHandler returns an HTTP handler for a single application.
// @Summary Get application
// @Description Returns one of the caller's applications. Applications of other users are reported as not found.
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.Application "Application"
// @Failure 400 {object} models.ErrorResponse "Invalid application id"
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applications/{id} [get]
// @Security BearerAuth
func NewGetApplicationHandler(svc ApplicationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := applicationIDFromRequest(w, r)
		if !ok {
			return
		}

		app, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			writeApplicationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}
