package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"freshfold/models"
	"freshfold/services/saas"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// existenceProbePassword is never a real credential. The platform's login
// error string distinguishes "no such customer" from "wrong password", which
// is the only existence check its API offers.
const existenceProbePassword = "freshfold-existence-probe"

// ResolveCustomer maps the session's email to an external customer record,
// creating one on the new-customer path or prefilling the form from the
// existing profile on the returning path.
func (s *DefaultWizardService) ResolveCustomer(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Busy {
		return nil, ErrSubmissionInProgress
	}

	resolveErr := s.resolve(ctx, session)
	if saveErr := s.Store.Save(ctx, session); saveErr != nil {
		return nil, saveErr
	}
	if resolveErr != nil {
		return session, resolveErr
	}
	return session, nil
}

// resolve mutates the session in place; the caller persists it.
func (s *DefaultWizardService) resolve(ctx context.Context, session *models.WizardSession) error {
	email := strings.TrimSpace(session.Form.Email)
	if email == "" {
		return &ValidationError{Fields: []string{"email"}}
	}
	if session.CustomerID != "" {
		return nil
	}

	if session.CustomerType == models.CustomerReturning {
		return s.resolveReturning(ctx, session, email)
	}
	return s.resolveNew(ctx, session, email)
}

func (s *DefaultWizardService) resolveReturning(ctx context.Context, session *models.WizardSession, email string) error {
	// Mirror first; a hit saves the remote round trips entirely.
	mirrored, err := s.Customers.GetByEmail(email)
	if err != nil {
		s.Logger.Error("resolveReturning: mirror lookup failed", zap.Error(err))
	}
	if mirrored != nil {
		prefillFromMirror(&session.Form, mirrored)
		session.CustomerID = mirrored.ExternalID
		return nil
	}

	remote, err := s.Platform.LoginCustomer(ctx, email, existenceProbePassword)
	switch {
	case err == nil:
		// The probe somehow authenticated; use the profile directly.
	case errors.Is(err, saas.ErrWrongPassword):
		// Wrong password means the email is registered.
		remote, err = s.Platform.GetCustomer(ctx, email)
		if err != nil {
			return &RemoteRequestError{Op: "getCustomer", Err: err}
		}
	case errors.Is(err, saas.ErrCustomerNotFound):
		// Recoverable: send the user down the new-customer path.
		session.CustomerType = models.CustomerNew
		return &CustomerNotFoundError{Email: email}
	default:
		return &RemoteRequestError{Op: "loginCustomer", Err: err}
	}

	prefillFromRemote(&session.Form, remote)
	session.CustomerID = remote.ID
	s.enqueueCustomerMirror(remote)
	return nil
}

func (s *DefaultWizardService) resolveNew(ctx context.Context, session *models.WizardSession, email string) error {
	form := &session.Form
	remote, err := s.Platform.CreateCustomer(ctx, saas.CreateCustomerRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     email,
		Mobile:    NormalizeMobile(form.Mobile),
		Address:   form.Address,
		Postcode:  form.Postcode,
	})
	if err != nil {
		if errors.Is(err, saas.ErrDuplicateCustomer) {
			return &DuplicateCustomerError{Email: email}
		}
		return &RemoteRequestError{Op: "addCustomer", Err: err}
	}

	if err := s.Identity.Provision(ctx, email, remote.ID); err != nil {
		s.Logger.Error("resolveNew: identity provisioning failed", zap.Error(err))
		return &AuthenticationError{Reason: "could not provision sign-in identity"}
	}

	session.CustomerID = remote.ID
	s.enqueueCustomerMirror(remote)
	return nil
}

func (s *DefaultWizardService) enqueueCustomerMirror(remote *saas.RemoteCustomer) {
	mirror := models.Customer{
		ID:         uuid.New().String(),
		ExternalID: remote.ID,
		Email:      remote.Email,
		FirstName:  remote.FirstName,
		LastName:   remote.LastName,
		Mobile:     remote.Mobile,
		Address:    remote.Address,
		Postcode:   remote.Postcode,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := s.Mirror.EnqueueCustomer(mirror); err != nil {
		s.Logger.Warn("failed to enqueue customer mirror", zap.Error(err))
	}
}

// prefillFromRemote fills form fields the user has not typed yet; typed
// values stay editable and win.
func prefillFromRemote(form *models.BookingForm, remote *saas.RemoteCustomer) {
	if form.FirstName == "" {
		form.FirstName = remote.FirstName
	}
	if form.LastName == "" {
		form.LastName = remote.LastName
	}
	if form.Mobile == "" {
		form.Mobile = NormalizeMobile(remote.Mobile)
	}
	if form.Address == "" {
		form.Address = remote.Address
	}
	if form.Postcode == "" {
		form.Postcode = remote.Postcode
	}
}

func prefillFromMirror(form *models.BookingForm, mirrored *models.Customer) {
	if form.FirstName == "" {
		form.FirstName = mirrored.FirstName
	}
	if form.LastName == "" {
		form.LastName = mirrored.LastName
	}
	if form.Mobile == "" {
		form.Mobile = mirrored.Mobile
	}
	if form.Address == "" {
		form.Address = mirrored.Address
	}
	if form.Postcode == "" {
		form.Postcode = mirrored.Postcode
	}
}
