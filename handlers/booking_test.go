package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freshfold/models"
	"freshfold/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubWizard answers every operation from canned fields.
type stubWizard struct {
	session *models.WizardSession
	result  *models.SubmissionResult
	missing []string
	err     error
}

func (s *stubWizard) InitiateSession(context.Context, models.FlowKind) (*models.WizardSession, error) {
	return s.session, s.err
}
func (s *stubWizard) GetSession(context.Context, string) (*models.WizardSession, error) {
	return s.session, s.err
}
func (s *stubWizard) UpdateFields(context.Context, string, models.BookingFormPatch) (*models.WizardSession, error) {
	return s.session, s.err
}
func (s *stubWizard) ToggleLocker(context.Context, string, string) (*models.WizardSession, error) {
	return s.session, s.err
}
func (s *stubWizard) SelectCustomerType(context.Context, string, models.CustomerType) (*models.WizardSession, error) {
	return s.session, s.err
}
func (s *stubWizard) Advance(context.Context, string) (*models.WizardSession, []string, error) {
	return s.session, s.missing, s.err
}
func (s *stubWizard) Retreat(context.Context, string) (*models.WizardSession, error) {
	return s.session, s.err
}
func (s *stubWizard) ResolveCustomer(context.Context, string) (*models.WizardSession, error) {
	return s.session, s.err
}
func (s *stubWizard) Submit(context.Context, string) (*models.SubmissionResult, error) {
	return s.result, s.err
}
func (s *stubWizard) CancelSession(context.Context, string) error {
	return s.err
}

type stubNotifier struct {
	notices []models.Notice
}

func (s *stubNotifier) Push(context.Context, string, models.NoticeLevel, string) error { return nil }
func (s *stubNotifier) Drain(context.Context, string) ([]models.Notice, error) {
	return s.notices, nil
}

func newBookingRouter(svc *stubWizard, notifier *stubNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, notifier, zap.NewNop())
	r := gin.New()
	r.POST("/session", h.InitiateSession)
	r.GET("/session/:sessionID", h.GetSession)
	r.POST("/session/:sessionID/advance", h.Advance)
	r.POST("/session/:sessionID/resolve", h.ResolveCustomer)
	r.POST("/session/:sessionID/submit", h.Submit)
	r.GET("/session/:sessionID/notices", h.DrainNotices)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInitiateSessionEndpoint(t *testing.T) {
	svc := &stubWizard{session: &models.WizardSession{SessionID: "s1", Flow: models.FlowCollection, Step: 1}}
	r := newBookingRouter(svc, &stubNotifier{})

	w := doRequest(r, http.MethodPost, "/session", `{"flow":"collection"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Session models.WizardSession `json:"session"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.Session.SessionID)
}

func TestAdvanceEndpointReportsMissingFields(t *testing.T) {
	svc := &stubWizard{
		session: &models.WizardSession{SessionID: "s1", Step: 2},
		missing: []string{"firstName", "email"},
	}
	r := newBookingRouter(svc, &stubNotifier{})

	w := doRequest(r, http.MethodPost, "/session/s1/advance", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"firstName", "email"}, resp.Missing)
}

func TestResolveEndpointCustomerNotFound(t *testing.T) {
	svc := &stubWizard{
		session: &models.WizardSession{SessionID: "s1", CustomerType: models.CustomerNew},
		err:     &booking.CustomerNotFoundError{Email: "nobody@example.com"},
	}
	r := newBookingRouter(svc, &stubNotifier{})

	w := doRequest(r, http.MethodPost, "/session/s1/resolve", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Code    string               `json:"code"`
		Session models.WizardSession `json:"session"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "customerNotFound", resp.Code)
	assert.Equal(t, models.CustomerNew, resp.Session.CustomerType,
		"the flipped session rides along for the client to re-render")
}

func TestErrorTaxonomyStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &booking.ValidationError{Fields: []string{"email"}}, http.StatusBadRequest},
		{"session not found", booking.ErrSessionNotFound, http.StatusNotFound},
		{"submission in progress", booking.ErrSubmissionInProgress, http.StatusConflict},
		{"not final step", booking.ErrNotFinalStep, http.StatusConflict},
		{"duplicate customer", &booking.DuplicateCustomerError{Email: "a@b.c"}, http.StatusConflict},
		{"authentication", &booking.AuthenticationError{Reason: "boom"}, http.StatusInternalServerError},
		{"order creation", &booking.OrderCreationError{Attempted: 2, Failed: 1}, http.StatusBadGateway},
		{"remote request", &booking.RemoteRequestError{Op: "addOrder"}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubWizard{err: tt.err}
			r := newBookingRouter(svc, &stubNotifier{})
			w := doRequest(r, http.MethodPost, "/session/s1/submit", "")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestDrainNoticesEndpoint(t *testing.T) {
	notifier := &stubNotifier{notices: []models.Notice{{Level: models.NoticeSuccess, Message: "Your booking is confirmed!"}}}
	r := newBookingRouter(&stubWizard{}, notifier)

	w := doRequest(r, http.MethodGet, "/session/s1/notices", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Notices []models.Notice `json:"notices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notices, 1)
	assert.Equal(t, models.NoticeSuccess, resp.Notices[0].Level)
}
