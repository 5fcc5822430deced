package models

import "errors"

// Storage-level errors shared by repositories and services.
var (
	// ErrNotFound is returned when no row matches the owner-scoped lookup.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a unique constraint rejects a write.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnknownStatus is returned for a status outside the closed set.
	ErrUnknownStatus = errors.New("unknown application status")
)
