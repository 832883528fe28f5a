package customerRepo

import "freshfold/models"

// CustomerRepository mirrors external customer records locally.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	GetByEmail(email string) (*models.Customer, error)
	GetByExternalID(externalID string) (*models.Customer, error)
	Delete(id string) error
}
