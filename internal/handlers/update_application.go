package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

//go:generate mockgen -source=update_application.go -destination=mock_update_application.go -package=handlers

// ApplicationUpdater defines the interface that the service must implement.
type ApplicationUpdater interface {
	Update(ctx context.Context, userID, id int64, company, role string, status models.ApplicationStatus) (*models.Application, error)
}

// UpdateApplicationRequest represents the JSON body replacing an application
// swagger:model UpdateApplicationRequest
type UpdateApplicationRequest struct {
	// Company name
	// required: true
	// default: Acme
	Company string `json:"company"`

	// Role applied for
	// required: true
	// default: SWE
	Role string `json:"role"`

	// New status
	// required: true
	// default: OFFER
	Status models.ApplicationStatus `json:"status"`
}

// NewUpdateApplicationHandler returns an HTTP handler that overwrites an application.
// @Summary Update application
// @Description Overwrites company, role and status of one of the caller's applications
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param updateApplicationRequest body handlers.UpdateApplicationRequest true "Application"
// @Success 200 {object} models.Application "Updated application"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Failure 409 {object} models.ErrorResponse "Duplicate company and role"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applications/{id} [put]
// @Security BearerAuth
func NewUpdateApplicationHandler(svc ApplicationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}
		id, ok := applicationIDFromRequest(w, r)
		if !ok {
			return
		}

		var req UpdateApplicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		app, err := svc.Update(r.Context(), userID, id, req.Company, req.Role, req.Status)
		if err != nil {
			writeApplicationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, app)
	}
}
