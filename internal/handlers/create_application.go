package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

//go:generate mockgen -source=create_application.go -destination=mock_create_application.go -package=handlers

// ApplicationCreator defines the interface that the service must implement.
type ApplicationCreator interface {
	Create(ctx context.Context, userID int64, company, role string, status models.ApplicationStatus) (*models.Application, error)
}

// CreateApplicationRequest represents the JSON body for a new application
// swagger:model CreateApplicationRequest
type CreateApplicationRequest struct {
	// Company name
	// required: true
	// default: Acme
	Company string `json:"company"`

	// Role applied for
	// required: true
	// default: SWE
	Role string `json:"role"`

	// Initial status, APPLIED when omitted
	// default: APPLIED
	Status *models.ApplicationStatus `json:"status,omitempty"`
}

// NewCreateApplicationHandler returns an HTTP handler that tracks a new application.
// @Summary Create application
// @Description Creates a job application owned by the caller
// @Tags applications
// @Accept json
// @Produce json
// @Param createApplicationRequest body handlers.CreateApplicationRequest true "Application"
// @Success 201 {object} models.Application "Created application"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 409 {object} models.ErrorResponse "Duplicate company and role"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applications [post]
// @Security BearerAuth
func NewCreateApplicationHandler(svc ApplicationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		var req CreateApplicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		var status models.ApplicationStatus
		if req.Status != nil {
			status = *req.Status
		}

		app, err := svc.Create(r.Context(), userID, req.Company, req.Role, status)
		if err != nil {
			writeApplicationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, app)
	}
}
