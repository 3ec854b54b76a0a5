package domain

import "errors"

var (
	// ErrNotFound is returned when an id or title has no stored record.
	ErrNotFound = errors.New("movie not found")

	// ErrAlreadyPopulated guards bulk population: the store must be empty.
	// It is a no-op outcome, not a failure.
	ErrAlreadyPopulated = errors.New("database is already populated")

	// ErrAlreadyUpToDate is returned when a full-detail record is
	// re-requested. The stored record is left untouched. It is a no-op
	// outcome, not a failure.
	ErrAlreadyUpToDate = errors.New("movie already has full detail")

	// ErrUpstreamFetch covers transport errors and non-success responses
	// from the metadata source.
	ErrUpstreamFetch = errors.New("failed to fetch data from metadata source")

	// ErrUpstreamNoMatch means the metadata source answered but reported no
	// matching movie.
	ErrUpstreamNoMatch = errors.New("movie not found in metadata source")

	// ErrInvalidRequest covers malformed pagination and payloads missing a
	// required field after normalization.
	ErrInvalidRequest = errors.New("invalid request")
)
