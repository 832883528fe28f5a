package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Session-level sentinel errors.
var (
	ErrSessionNotFound      = errors.New("booking session not found or expired")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrNotFinalStep         = errors.New("submission is only allowed from the final step")
)

// ValidationError reports missing or malformed required fields. It is caught
// before any network call and is never fatal.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// CustomerNotFoundError signals a returning-customer lookup miss. Recoverable:
// the session is flipped back to the new-customer path.
type CustomerNotFoundError struct {
	Email string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("no customer registered for %s", e.Email)
}

// DuplicateCustomerError signals a new-customer creation against an already
// registered email. Blocking: the user must switch to the returning path.
type DuplicateCustomerError struct {
	Email string
}

func (e *DuplicateCustomerError) Error() string {
	return fmt.Sprintf("a customer already exists for %s", e.Email)
}

// AuthenticationError signals identity provisioning or sign-in failure.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

// RemoteRequestError wraps any other remote failure. Reported once; no
// automatic retry.
type RemoteRequestError struct {
	Op  string
	Err error
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("remote request %s failed: %v", e.Op, e.Err)
}

func (e *RemoteRequestError) Unwrap() error { return e.Err }

// OrderCreationError reports a failed per-locker order submission. Orders
// created before the failure are not rolled back.
type OrderCreationError struct {
	Attempted int
	Failed    int
	Err       error
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("order creation failed for %d of %d lockers: %v", e.Failed, e.Attempted, e.Err)
}

func (e *OrderCreationError) Unwrap() error { return e.Err }
