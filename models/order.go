package models

import "time"

// OrderLine is a single priced line on an order.
type OrderLine struct {
	Name      string      `json:"name" bson:"name"`
	Quantity  int         `json:"quantity" bson:"quantity"`
	UnitPrice float64     `json:"unitPrice" bson:"unit_price"`
	Service   ServiceType `json:"service" bson:"service"`
}

// Order mirrors an external platform order. One order is created per selected
// locker, each carrying an equal share of the session total.
type Order struct {
	ID              string           `json:"id" bson:"id"`
	CustomerID      string           `json:"customerId" bson:"customer_id"`
	ExternalOrderID string           `json:"externalOrderId" bson:"external_order_id"`
	Locker          string           `json:"locker" bson:"locker"`
	Items           []OrderLine      `json:"items" bson:"items"`
	Services        ServiceSelection `json:"services" bson:"services"`
	Total           float64          `json:"total" bson:"total"`
	CollectionDate  string           `json:"collectionDate" bson:"collection_date"`
	Notes           string           `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt" bson:"created_at"`
}
