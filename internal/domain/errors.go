package domain

import "errors"

// Transport-level sentinels, mapped from HTTP statuses by the API adapter.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ErrAuthRequired means a protected operation was attempted with no cached
// identity. The operation is aborted before any network call; the caller
// should route the user to login.
var ErrAuthRequired = errors.New("login required")

// ErrOwnerOnly means the operation needs the owner role.
var ErrOwnerOnly = errors.New("owner role required")

// Validation field codes surfaced as inline messages; never sent on the wire.
const (
	FieldRoomRequired        = "room_required"
	FieldCheckInRequired     = "checkin_required"
	FieldDaysRequired        = "days_required"
	FieldMonthsRequired      = "months_required"
	FieldCredentialsRequired = "credentials_required"
	FieldListingRequired     = "listing_fields_required"
)

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string { return "validation failed: " + e.Field }

// FetchError wraps a failed listing/booking retrieval. Display state built
// from the failed fetch must be cleared, not left stale.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch failed: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// ServerMessager is implemented by transport errors that carry a
// server-provided message suitable for display.
type ServerMessager interface {
	ServerMessage() string
}

// SubmissionError wraps a failed submit after client-side preconditions
// passed. Message holds the server's message when one was provided.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "booking failed, please try again"
}

func (e *SubmissionError) Unwrap() error { return e.Err }
