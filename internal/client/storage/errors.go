package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that the token slot is empty
	ErrTokenNotFound = errors.New("token not found")

	// ErrPreferenceNotFound indicates that a preference has never been saved
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
