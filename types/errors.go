package types

import "errors"

// exported errors
var (
	ErrUnknownAction    = errors.New("unknown action, it should be one of read, write, and read_write")
	ErrStoreUnavailable = errors.New("grant store unavailable")
	ErrNotFound         = errors.New("not found")
)
