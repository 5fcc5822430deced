package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ApplicationStatus is the closed set of states a job application can be in.
type ApplicationStatus string

// Supported application statuses
const (
	StatusApplied   ApplicationStatus = "APPLIED"
	StatusInterview ApplicationStatus = "INTERVIEW"
	StatusOffer     ApplicationStatus = "OFFER"
	StatusRejected  ApplicationStatus = "REJECTED"
)

// ParseApplicationStatus converts s into an ApplicationStatus, rejecting
// anything outside the four known values.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch st := ApplicationStatus(s); st {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownStatus, s)
	}
}

// UnmarshalJSON rejects unknown statuses while decoding request bodies.
func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseApplicationStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ApplicationDB represents an application row in the database
type ApplicationDB struct {
	ID        int64             `db:"id"`         // Primary key
	UserID    int64             `db:"user_id"`    // Owner
	Company   string            `db:"company"`    // Company name
	Role      string            `db:"role"`       // Role applied for
	Status    ApplicationStatus `db:"status"`     // Current status
	CreatedAt time.Time         `db:"created_at"` // Creation timestamp
	UpdatedAt time.Time         `db:"updated_at"` // Last update timestamp
}

// Application is the public representation of a job application
// swagger:model Application
type Application struct {
	// Application identifier
	// example: 1
	ID int64 `json:"id"`

	// Company name
	// example: Acme
	Company string `json:"company"`

	// Role applied for
	// example: SWE
	Role string `json:"role"`

	// Current status
	// example: APPLIED
	Status ApplicationStatus `json:"status"`
}

// ToApplication strips storage-only fields.
func (a ApplicationDB) ToApplication() Application {
	return Application{
		ID:      a.ID,
		Company: a.Company,
		Role:    a.Role,
		Status:  a.Status,
	}
}
