package models

import "time"

// PaymentRequest asks for a payment intent covering a submitted booking.
type PaymentRequest struct {
	CustomerID string  `json:"customerId"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

// PaymentIntentResponse carries the client-side handle for the payment step.
type PaymentIntentResponse struct {
	IntentID     string    `json:"intentId"`
	ClientSecret string    `json:"clientSecret"`
	Amount       float64   `json:"amount"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
