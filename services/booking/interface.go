package booking

import (
	"context"
	"time"

	customerRepo "freshfold/database/repository/customer"
	"freshfold/models"
	"freshfold/services/notification"
	"freshfold/services/saas"

	"go.uber.org/zap"
)

// IdentityProvisioner creates a local sign-in identity for a new customer.
type IdentityProvisioner interface {
	Provision(ctx context.Context, email, customerID string) error
}

// MirrorQueue schedules asynchronous mirror-database writes.
type MirrorQueue interface {
	EnqueueCustomer(customer models.Customer) error
	EnqueueOrder(order models.Order) error
}

// WizardService drives the multi-step booking flows.
type WizardService interface {
	InitiateSession(ctx context.Context, flow models.FlowKind) (*models.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	UpdateFields(ctx context.Context, sessionID string, patch models.BookingFormPatch) (*models.WizardSession, error)
	ToggleLocker(ctx context.Context, sessionID, lockerID string) (*models.WizardSession, error)
	SelectCustomerType(ctx context.Context, sessionID string, kind models.CustomerType) (*models.WizardSession, error)
	Advance(ctx context.Context, sessionID string) (*models.WizardSession, []string, error)
	Retreat(ctx context.Context, sessionID string) (*models.WizardSession, error)
	ResolveCustomer(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Submit(ctx context.Context, sessionID string) (*models.SubmissionResult, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store     SessionStore
	Platform  saas.Client
	Customers customerRepo.CustomerRepository
	Identity  IdentityProvisioner
	Notifier  notification.NotificationService
	Mirror    MirrorQueue
	Logger    *zap.Logger

	// Clock is overridable in tests; zero value means time.Now.
	Clock func() time.Time
}

func (s *DefaultWizardService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}
