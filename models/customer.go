package models

import "time"

// Customer mirrors an external platform customer record locally.
type Customer struct {
	ID         string    `json:"id" bson:"id"`
	ExternalID string    `json:"externalId" bson:"external_id"`
	Email      string    `json:"email" bson:"email"`
	FirstName  string    `json:"firstName" bson:"first_name"`
	LastName   string    `json:"lastName" bson:"last_name"`
	Mobile     string    `json:"mobile" bson:"mobile"`
	Address    string    `json:"address,omitempty" bson:"address,omitempty"`
	Postcode   string    `json:"postcode,omitempty" bson:"postcode,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updated_at"`
}

// Identity is the locally provisioned sign-in record keyed by email.
// New customers get a random password they never see; the magic-link flow is
// the supported way back in.
type Identity struct {
	Email        string    `json:"email" bson:"email"`
	CustomerID   string    `json:"customerId" bson:"customer_id"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
