package booking

import "fmt"

// ValidationError rejects a submission before it reaches the store. The
// message is user-facing and blocks the submit action.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// BookingError is a write-path failure surfaced to the caller with a stable
// code and a user-facing message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrNotAuthenticated is returned when a write is attempted without a
// resolvable identity.
var ErrNotAuthenticated = &BookingError{
	Code:    "notAuthenticated",
	Message: "User not authenticated",
}
