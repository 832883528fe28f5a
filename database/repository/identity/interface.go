package identityRepo

import "freshfold/models"

// IdentityRepository stores locally provisioned sign-in records.
type IdentityRepository interface {
	Create(identity *models.Identity) error
	GetByEmail(email string) (*models.Identity, error)
	Delete(email string) error
}
