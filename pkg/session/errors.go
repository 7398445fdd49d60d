package session

import "errors"

var (
	// ErrReservedKey is returned when application code writes a key the
	// session manages itself.
	ErrReservedKey = errors.New("session.reserved_key")

	// ErrNoCache is returned by the side-storage methods when the codec has
	// no cache service.
	ErrNoCache = errors.New("session.no_cache")

	// ErrCorrupt marks a cookie whose payload verified but could not be
	// interpreted. It never leaves the package.
	ErrCorrupt = errors.New("session.corrupt")
)
