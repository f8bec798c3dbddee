package repo

import "errors"

var (
	// ErrOptionNotFound is returned when an option has no tally row.
	ErrOptionNotFound = errors.New("option not found")
)
