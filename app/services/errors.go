package services

import "fmt"

// ValidationError reports malformed or missing required input. Maps to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AuthorizationError reports that the caller does not own the referenced
// resource. Kept distinct from validation so handlers can respond 403 with
// different user messaging.
type AuthorizationError struct {
	Msg string
}

func (e *AuthorizationError) Error() string { return e.Msg }

// NoRecordsError reports a statement generation request for a period with no
// underlying hour records. An expected, user-correctable condition, not a
// system fault.
type NoRecordsError struct {
	Month int
	Year  int
}

func (e *NoRecordsError) Error() string {
	return fmt.Sprintf("no hour records for period %d/%d", e.Month, e.Year)
}

// StorageError wraps a failed persistence operation. Never retried here;
// retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }
