package booking

import (
	"context"
	"testing"

	"freshfold/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiateSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	session, err := env.svc.InitiateSession(ctx, models.FlowCollection)
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, 1, session.Step)
	assert.False(t, session.TypeChosen)

	loaded, err := env.svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, loaded.SessionID)

	_, err = env.svc.InitiateSession(ctx, models.FlowKind("bogus"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"flow"}, verr.Fields)
}

func TestGetSessionUnknownID(t *testing.T) {
	env := newTestEnv()
	_, err := env.svc.GetSession(context.Background(), "never-created")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateFieldsAppliesPatchAndNormalizesMobile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{SessionID: "s1", Flow: models.FlowCollection})

	first := "Ada"
	mobile := "+44 (7700) 900-123"
	session, err := env.svc.UpdateFields(ctx, "s1", models.BookingFormPatch{
		FirstName: &first,
		Mobile:    &mobile,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.Form.FirstName)
	assert.Equal(t, "447700900123", session.Form.Mobile)

	// Unpatched fields are untouched.
	assert.Empty(t, session.Form.LastName)
}

func TestSelectCustomerTypeAdvancesExactlyOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{SessionID: "s1", Flow: models.FlowCollection, Step: 1})

	session, err := env.svc.SelectCustomerType(ctx, "s1", models.CustomerReturning)
	require.NoError(t, err)
	assert.Equal(t, models.CustomerReturning, session.CustomerType)
	assert.True(t, session.TypeChosen)
	assert.Equal(t, 2, session.Step)

	// A repeat selection neither advances again nor changes the type.
	session, err = env.svc.SelectCustomerType(ctx, "s1", models.CustomerNew)
	require.NoError(t, err)
	assert.Equal(t, models.CustomerReturning, session.CustomerType)
	assert.Equal(t, 2, session.Step)

	_, err = env.svc.SelectCustomerType(ctx, "s1", models.CustomerType("guest"))
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAdvanceRefusesIncompleteStep(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{SessionID: "s1", Flow: models.FlowCollection, Step: 1})

	session, missing, err := env.svc.Advance(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"customerType"}, missing)
	assert.Equal(t, 1, session.Step, "refused advance must not move the step")
}

func TestAdvanceClampsAtFinalStep(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{
		SessionID:  "s1",
		Flow:       models.FlowCollection,
		Step:       3,
		TypeChosen: true,
		Form:       completeForm(),
	})

	session, missing, err := env.svc.Advance(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, 3, session.Step, "collection flow tops out at step 3")
}

func TestRetreatFloorsAtStepOne(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{SessionID: "s1", Flow: models.FlowDropoff, Step: 2})

	session, err := env.svc.Retreat(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, session.Step)

	session, err = env.svc.Retreat(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, session.Step)
}

func TestToggleLocker(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{SessionID: "s1", Flow: models.FlowCollection})

	for _, id := range []string{"3", "7", "12"} {
		_, err := env.svc.ToggleLocker(ctx, "s1", id)
		require.NoError(t, err)
	}

	// Deselecting the middle locker preserves the order of the rest.
	session, err := env.svc.ToggleLocker(ctx, "s1", "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "12"}, session.Form.Lockers)

	// Reselecting appends at the end.
	session, err = env.svc.ToggleLocker(ctx, "s1", "7")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "12", "7"}, session.Form.Lockers)

	// A double toggle is a no-op overall.
	_, err = env.svc.ToggleLocker(ctx, "s1", "1")
	require.NoError(t, err)
	session, err = env.svc.ToggleLocker(ctx, "s1", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "12", "7"}, session.Form.Lockers)

	_, err = env.svc.ToggleLocker(ctx, "s1", "18")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBusySessionRejectsMutations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{SessionID: "s1", Flow: models.FlowCollection, Busy: true})

	name := "Ada"
	_, err := env.svc.UpdateFields(ctx, "s1", models.BookingFormPatch{FirstName: &name})
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	_, err = env.svc.ToggleLocker(ctx, "s1", "3")
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	_, _, err = env.svc.Advance(ctx, "s1")
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	_, err = env.svc.Retreat(ctx, "s1")
	assert.ErrorIs(t, err, ErrSubmissionInProgress)
}

func TestCancelSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedSession(&models.WizardSession{SessionID: "s1", Flow: models.FlowCollection})

	require.NoError(t, env.svc.CancelSession(ctx, "s1"))
	_, err := env.svc.GetSession(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
