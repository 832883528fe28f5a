package orderRepo

import "freshfold/models"

// OrderRepository mirrors external order records locally.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByCustomer(customerID string) ([]models.Order, error)
}
