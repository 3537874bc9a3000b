// Package storage writes generated artifacts to the local filesystem.
// Writes go through a temporary file and a rename so readers never observe
// a partially written document.
package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is malformed or contains invalid characters.
	// This includes empty keys and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// System stores and retrieves artifacts by key.
type System interface {
	// Store saves data at the specified key, replacing existing contents.
	// Parent directories are created as needed.
	Store(key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(key string) ([]byte, error)
}
