package models

// Sort fields accepted by the application listing.
const (
	SortByID      = "id"
	SortByCompany = "company"
	SortByRole    = "role"
	SortByStatus  = "status"
)

// Sort directions accepted by the application listing.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortFields is the whitelist of sortable application columns.
var SortFields = []string{SortByID, SortByCompany, SortByRole, SortByStatus}

// ApplicationFilter describes one page of a user's applications.
type ApplicationFilter struct {
	Query     *string            // Case-insensitive substring of company or role
	Status    *ApplicationStatus // Exact status match
	Page      int                // 1-based page number
	Limit     int                // Page size
	SortBy    string             // One of SortFields
	SortOrder string             // SortAsc or SortDesc
}

// DefaultApplicationFilter returns the filter used when no query parameters are given.
func DefaultApplicationFilter() ApplicationFilter {
	return ApplicationFilter{
		Page:      1,
		Limit:     10,
		SortBy:    SortByID,
		SortOrder: SortDesc,
	}
}

// Offset returns the number of rows skipped before the page starts.
func (f ApplicationFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ApplicationPage is one page of applications plus the unpaginated total
// swagger:model ApplicationPage
type ApplicationPage struct {
	// Applications on this page
	Items []Application `json:"items"`

	// Number of applications matching the filter
	// example: 1
	Total int `json:"total"`

	// Page number
	// example: 1
	Page int `json:"page"`

	// Page size
	// example: 10
	Limit int `json:"limit"`
}
