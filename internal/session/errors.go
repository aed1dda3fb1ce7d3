package session

import "errors"

var (
	// ErrSessionExists is returned when storing under a name already in use.
	ErrSessionExists = errors.New("session already exists")

	// ErrSessionNotFound is returned when a named session has no record.
	ErrSessionNotFound = errors.New("session does not exist")

	// ErrInvalidName is returned for names that cannot be used as file names.
	ErrInvalidName = errors.New("invalid session name")
)
