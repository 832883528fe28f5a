package booking

import (
	"context"
	"fmt"
	"time"

	"freshfold/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession starts a fresh wizard session for the given flow.
func (s *DefaultWizardService) InitiateSession(ctx context.Context, flow models.FlowKind) (*models.WizardSession, error) {
	if flow != models.FlowCollection && flow != models.FlowDropoff {
		return nil, &ValidationError{Fields: []string{"flow"}}
	}

	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Flow:      flow,
		Step:      1,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Debug("wizard session initiated",
		zap.String("sessionID", session.SessionID), zap.String("flow", string(flow)))
	return session, nil
}

// GetSession loads the current session state.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// UpdateFields applies a typed field patch to the session's form.
func (s *DefaultWizardService) UpdateFields(ctx context.Context, sessionID string, patch models.BookingFormPatch) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Busy {
		return nil, ErrSubmissionInProgress
	}

	patch.Apply(&session.Form)
	if patch.Mobile != nil {
		session.Form.Mobile = NormalizeMobile(session.Form.Mobile)
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ToggleLocker selects or deselects one locker id, preserving selection order
// for the remaining ids. Toggling the same id twice is a no-op.
func (s *DefaultWizardService) ToggleLocker(ctx context.Context, sessionID, lockerID string) (*models.WizardSession, error) {
	if !ValidLocker(lockerID) {
		return nil, &ValidationError{Fields: []string{"lockerNumber"}}
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Busy {
		return nil, ErrSubmissionInProgress
	}

	found := false
	kept := session.Form.Lockers[:0]
	for _, id := range session.Form.Lockers {
		if id == lockerID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if found {
		session.Form.Lockers = kept
	} else {
		session.Form.Lockers = append(session.Form.Lockers, lockerID)
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectCustomerType records the new/returning choice and performs exactly one
// automatic forward transition. Repeat selections never advance again and
// never change the recorded type.
func (s *DefaultWizardService) SelectCustomerType(ctx context.Context, sessionID string, kind models.CustomerType) (*models.WizardSession, error) {
	if kind != models.CustomerNew && kind != models.CustomerReturning {
		return nil, &ValidationError{Fields: []string{"customerType"}}
	}

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Busy {
		return nil, ErrSubmissionInProgress
	}
	if session.TypeChosen {
		return session, nil
	}

	session.CustomerType = kind
	session.TypeChosen = true
	session.Step = clampStep(session.Step+1, session.Flow)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance moves the session forward one step if the current step's required
// fields are populated. When the step is incomplete the transition is refused
// and the missing field names are returned for the client to surface.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, []string, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Busy {
		return nil, nil, ErrSubmissionInProgress
	}

	missing := MissingFields(session, s.now())
	if len(missing) > 0 {
		return session, missing, nil
	}

	session.Step = clampStep(session.Step+1, session.Flow)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, nil, nil
}

// Retreat moves the session back one step. Always allowed, floored at step 1.
func (s *DefaultWizardService) Retreat(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Busy {
		return nil, ErrSubmissionInProgress
	}

	session.Step = clampStep(session.Step-1, session.Flow)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession drops the session and any pending notices.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel session: %w", err)
	}
	return nil
}

func clampStep(step int, flow models.FlowKind) int {
	if step < 1 {
		return 1
	}
	if max := flow.StepCount(); step > max {
		return max
	}
	return step
}
