package feed

import (
	"errors"
	"fmt"
)

// Error taxonomy for content-store interactions.
//
// ValidationError-class failures (ErrValidation) are raised locally before
// any network call. ErrConflict marks a duplicate like insert and is benign:
// the desired state already exists. NetworkError and RemoteError wrap
// transport failures and backend rejections respectively; on read paths they
// degrade to empty results, on write paths they trigger rollback. None of
// them is fatal to the page.
var (
	// ErrConflict indicates a like insert hit an existing (subject, anon_id)
	// row. Callers treat it as success.
	ErrConflict = errors.New("already liked")

	// ErrValidation indicates input was rejected locally; no write was
	// attempted.
	ErrValidation = errors.New("invalid input")
)

// NetworkError is a transport-level failure talking to the content store
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError is a rejection by the content store itself
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote failure during %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }
