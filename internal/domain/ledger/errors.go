package ledger

import "errors"

// Ledger domain errors
var (
	// Session errors
	ErrSessionNotFound = errors.New("ledger session not found")

	// Workflow errors
	ErrEntryNotFound     = errors.New("ledger entry not found")
	ErrInvalidTransition = errors.New("ledger entry has no pending correction request")

	// View and export errors
	ErrPageOutOfRange = errors.New("page is outside the valid range")
	ErrEmptyExport    = errors.New("nothing to export for the current page")
)
