package utils

import "errors"

// Common application errors used across the query layer.
var (
	// ErrNoData signals that a query matched zero rows for the requested
	// criteria. It is distinct from a store failure and maps to HTTP 404.
	ErrNoData = errors.New("NO_DATA_FOR_CRITERIA")
)
