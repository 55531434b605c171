package schedule

import "errors"

// Sentinel errors of the persistence boundary. Handlers translate them to
// 409 and 404; everything else from storage is a write failure.
var (
	// ErrConflict: an overlapping record existed at the moment of the
	// atomic check inside CreateChecked.
	ErrConflict = errors.New("time_conflict")

	// ErrNotFound: the mutation target no longer exists.
	ErrNotFound = errors.New("reservation_not_found")
)
