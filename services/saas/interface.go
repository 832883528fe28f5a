package saas

import "context"

// RemoteCustomer is the external platform's view of a customer.
type RemoteCustomer struct {
	ID        string `json:"customerID"`
	FirstName string `json:"customerName"`
	LastName  string `json:"customerLastName"`
	Email     string `json:"customerEmail"`
	Mobile    string `json:"customerTel"`
	Address   string `json:"customerAddress"`
	Postcode  string `json:"customerPostcode"`
}

// CreateCustomerRequest carries the fields for a remote customer creation.
type CreateCustomerRequest struct {
	FirstName string `json:"customerName"`
	LastName  string `json:"customerLastName"`
	Email     string `json:"customerEmail"`
	Mobile    string `json:"customerTel"`
	Address   string `json:"customerAddress,omitempty"`
	Postcode  string `json:"customerPostcode,omitempty"`
}

// OrderItem is one line on a remote order.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price"`
}

// CreateOrderRequest carries the fields for a remote order creation.
type CreateOrderRequest struct {
	CustomerID     string      `json:"customerID"`
	Items          []OrderItem `json:"items"`
	Total          float64     `json:"finalTotal"`
	Locker         string      `json:"lockerNumber"`
	CollectionDate string      `json:"collectionDate"`
	Notes          string      `json:"orderNotes,omitempty"`
}

// RemoteOrder is the external platform's view of a created order.
type RemoteOrder struct {
	ID         string  `json:"orderID"`
	CustomerID string  `json:"customerID"`
	Total      float64 `json:"finalTotal"`
}

// Client is the laundry platform API surface used by the booking services.
// Implementations are constructed and injected so tests can substitute fakes.
type Client interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*RemoteCustomer, error)
	GetCustomer(ctx context.Context, email string) (*RemoteCustomer, error)
	LoginCustomer(ctx context.Context, email, password string) (*RemoteCustomer, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*RemoteOrder, error)
	// Forward relays an arbitrary request to the platform with the bearer
	// token injected, for the proxy endpoint.
	Forward(ctx context.Context, method, path string, body []byte) (int, []byte, error)
}
