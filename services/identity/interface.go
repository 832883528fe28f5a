package identity

import "context"

// IdentityService manages locally provisioned sign-in records for customers.
//
// New customers are provisioned with a random password that is never revealed,
// so password sign-in for those identities fails by design; the magic-link
// flow is the supported way back in.
type IdentityService interface {
	Provision(ctx context.Context, email, customerID string) error
	Authenticate(ctx context.Context, email, password string) (string, error)
	RequestMagicLink(ctx context.Context, email string) error
	VerifyMagicLink(ctx context.Context, email, token string) (string, error)
}
