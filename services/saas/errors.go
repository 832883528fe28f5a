package saas

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classified from the platform's error strings.
var (
	// ErrCustomerNotFound means the email is not registered on the platform.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateCustomer means the email is already registered.
	ErrDuplicateCustomer = errors.New("customer already registered")
	// ErrWrongPassword means the customer exists but the password did not
	// match. The returning-customer probe relies on this to learn existence.
	ErrWrongPassword = errors.New("incorrect password")
)

// RequestError wraps any other remote failure (network, HTTP status,
// unclassified platform error string).
type RequestError struct {
	Path   string
	Status int
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("laundry platform request %s failed (status %d): %s", e.Path, e.Status, e.Reason)
}

// classifyError maps the platform's free-text error field to sentinel errors.
func classifyError(path string, status int, message string) error {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "no customer"), strings.Contains(lower, "not found"):
		return ErrCustomerNotFound
	case strings.Contains(lower, "already"), strings.Contains(lower, "exists"):
		return ErrDuplicateCustomer
	case strings.Contains(lower, "password"):
		return ErrWrongPassword
	default:
		return &RequestError{Path: path, Status: status, Reason: message}
	}
}
