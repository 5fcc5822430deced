package models

// Application event types published to the audit stream.
const (
	EventApplicationCreated = "application.created"
	EventApplicationUpdated = "application.updated"
	EventApplicationDeleted = "application.deleted"
)

// ApplicationEvent records a change to an application for downstream consumers.
type ApplicationEvent struct {
	EventID       string            `json:"event_id"`       // Unique event identifier
	Type          string            `json:"type"`           // One of the Event* constants
	ApplicationID int64             `json:"application_id"` // Affected application
	UserID        int64             `json:"user_id"`        // Owner of the application
	Company       string            `json:"company"`        // Company after the change
	Role          string            `json:"role"`           // Role after the change
	Status        ApplicationStatus `json:"status"`         // Status after the change
	Timestamp     int64             `json:"timestamp"`      // Unix seconds
}
