package models

import "time"

// FlowKind selects which wizard variant a session runs.
type FlowKind string

const (
	FlowCollection FlowKind = "collection"
	FlowDropoff    FlowKind = "dropoff"
)

// StepCount returns the number of steps in the flow.
func (f FlowKind) StepCount() int {
	if f == FlowDropoff {
		return 4
	}
	return 3
}

// CustomerType distinguishes the new-customer and returning-customer paths.
// It is chosen once per session and never changes except on a returning-path
// lookup miss, which flips it back to new.
type CustomerType string

const (
	CustomerNew       CustomerType = "new"
	CustomerReturning CustomerType = "returning"
)

// WizardSession holds the full state of one booking attempt between requests.
type WizardSession struct {
	SessionID     string       `json:"sessionId"`
	Flow          FlowKind     `json:"flow"`
	Step          int          `json:"step"`
	CustomerType  CustomerType `json:"customerType,omitempty"`
	TypeChosen    bool         `json:"typeChosen"`
	Form          BookingForm  `json:"form"`
	CustomerID    string       `json:"customerId,omitempty"` // external id once resolved
	Busy          bool         `json:"busy"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// SubmissionResult is handed back to the caller for navigation to the
// confirmation/payment step.
type SubmissionResult struct {
	SessionID  string      `json:"sessionId"`
	CustomerID string      `json:"customerId"`
	OrderIDs   []string    `json:"orderIds"`
	Total      float64     `json:"total"`
	Form       BookingForm `json:"form"`
}
