package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/middlewares"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// ok or unavailable
	// default: ok
	Status string `json:"status"`
}

// RootResponse identifies the running service
// swagger:model RootResponse
type RootResponse struct {
	// Service banner
	// default: Job Tracker API is running
	Message string `json:"message"`

	// Path of the API documentation
	// default: /swagger/index.html
	Docs string `json:"docs"`
}

// NewHealthHandler returns an HTTP handler that pings the database.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "ok"
// @Failure 503 {object} handlers.HealthResponse "unavailable"
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "request_id", middlewares.GetRequestIDFromContext(r.Context()), "err", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// NewRootHandler returns an HTTP handler for the service banner.
func NewRootHandler(appName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message: appName + " is running",
			Docs:    "/swagger/index.html",
		})
	}
}
