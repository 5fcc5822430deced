package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
)

//go:generate mockgen -source=list_applications.go -destination=mock_list_applications.go -package=handlers

// ApplicationLister defines the interface that the service must implement.
type ApplicationLister interface {
	List(ctx context.Context, userID int64, filter models.ApplicationFilter) (*models.ApplicationPage, error)
}

// NewListApplicationsHandler returns an HTTP handler for a filtered, sorted
// page of the caller's applications.
// @Summary List applications
// @Description Returns one page of the caller's applications
// @Tags applications
// @Produce json
// @Param q query string false "Case-insensitive substring of company or role"
// @Param status query string false "Status" Enums(APPLIED, INTERVIEW, OFFER, REJECTED)
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Page size" default(10) minimum(1) maximum(50)
// @Param sort_by query string false "Sort field" Enums(id, company, role, status) default(id)
// @Param sort_order query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} models.ApplicationPage "Page of applications"
// @Failure 400 {object} models.ErrorResponse "Invalid sort field"
// @Failure 401 {object} models.ErrorResponse "Could not validate credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /applications [get]
// @Security BearerAuth
func NewListApplicationsHandler(svc ApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(w, r)
		if !ok {
			return
		}

		filter, detail := parseApplicationFilter(r)
		if detail != "" {
			writeError(w, http.StatusBadRequest, detail)
			return
		}

		page, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			writeApplicationError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, page)
	}
}

// parseApplicationFilter overlays query parameters on the default filter.
// Range checks are left to the service; only syntax is checked here.
func parseApplicationFilter(r *http.Request) (models.ApplicationFilter, string) {
	filter := models.DefaultApplicationFilter()
	query := r.URL.Query()

	if query.Has("q") {
		q := query.Get("q")
		filter.Query = &q
	}

	if query.Has("status") {
		status, err := models.ParseApplicationStatus(query.Get("status"))
		if err != nil {
			return filter, detailInvalidStatus
		}
		filter.Status = &status
	}

	if query.Has("page") {
		page, err := strconv.Atoi(query.Get("page"))
		if err != nil {
			return filter, "Invalid page"
		}
		filter.Page = page
	}

	if query.Has("limit") {
		limit, err := strconv.Atoi(query.Get("limit"))
		if err != nil {
			return filter, "Invalid limit"
		}
		filter.Limit = limit
	}

	if query.Has("sort_by") {
		filter.SortBy = query.Get("sort_by")
	}
	if query.Has("sort_order") {
		filter.SortOrder = query.Get("sort_order")
	}

	return filter, ""
}
