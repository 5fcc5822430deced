package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

//go:generate mockgen -source=account.go -destination=mock_account.go -package=handlers

// AccountDeleter removes the caller's account.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID int64) error
}

// NewDeleteAccountHandler returns an HTTP handler that deletes the caller's
// account together with all of their applications.
// @Summary Delete current user
// @Description Deletes the authenticated user and cascades to every application they own
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse "Deleted"
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/me [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		err := svc.DeleteAccount(r.Context(), userID)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Deleted"})
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			logger.Log.Errorw("internal server error", "request_id", middlewares.GetRequestIDFromContext(r.Context()), "userID", userID, "err", err)
			writeError(w, http.StatusInternalServerError, detailInternal)
		}
	}
}
