package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Input errors
	ErrInvalidDate = errors.New("invalid memo date")

	// Store errors
	ErrDeleteFailed = errors.New("failed to delete memo")
)

// Context keys for error values
const (
	MemoIDKey   = "memo_id"
	PositionKey = "position"
)
