// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import "errors"

var (
	// ErrInvalidURL is returned when an address cannot be parsed. Nothing
	// has been created when it is returned.
	ErrInvalidURL = errors.New("invalid url")

	// ErrPlatformWindow wraps toolkit failures while building a window
	// or attaching one of its surfaces.
	ErrPlatformWindow = errors.New("platform window error")

	// ErrWindowLimit is returned when the configured number of live
	// window groups is reached.
	ErrWindowLimit = errors.New("window group limit reached")

	// ErrSurfaceNotFound is returned by queries on a label that resolves
	// to nothing. Control commands treat this case as a no-op instead.
	ErrSurfaceNotFound = errors.New("surface not found")

	// ErrSuggestionsDisabled is returned when search suggestions are
	// turned off in the configuration.
	ErrSuggestionsDisabled = errors.New("search suggestions disabled")

	// ErrBookmarkNotFound is returned for an unknown bookmark ID.
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrBookmarkExists is returned when another bookmark already holds
	// the address.
	ErrBookmarkExists = errors.New("bookmark already exists")
)
