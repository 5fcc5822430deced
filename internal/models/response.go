package models

// ErrorResponse is returned for every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human readable reason
	// example: Invalid sort field
	Detail string `json:"detail"`
}

// MessageResponse is returned by endpoints without a resource body
// swagger:model MessageResponse
type MessageResponse struct {
	// Result message
	// example: Deleted
	Message string `json:"message"`
}
