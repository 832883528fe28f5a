package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"freshfold/models"
	"freshfold/services/saas"

	"go.uber.org/zap"
)

// testNow is a fixed Wednesday; the earliest valid collection date from it is
// Friday 2026-01-09, and 2026-01-11 is a Sunday.
var testNow = time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)

// memorySessionStore round-trips sessions through JSON so mutations on a
// loaded session never leak back into the store, same as the Redis store.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string][]byte)}
}

func (m *memorySessionStore) Save(_ context.Context, session *models.WizardSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.sessions[session.SessionID] = data
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, sessionID string) (*models.WizardSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.WizardSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (m *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// fakePlatform records calls and delegates to overridable funcs.
type fakePlatform struct {
	mu sync.Mutex

	createCustomerFn func(req saas.CreateCustomerRequest) (*saas.RemoteCustomer, error)
	getCustomerFn    func(email string) (*saas.RemoteCustomer, error)
	loginCustomerFn  func(email, password string) (*saas.RemoteCustomer, error)
	createOrderFn    func(req saas.CreateOrderRequest) (*saas.RemoteOrder, error)

	createCustomerCalls []saas.CreateCustomerRequest
	loginCalls          []string
	createOrderCalls    []saas.CreateOrderRequest
}

func (f *fakePlatform) CreateCustomer(_ context.Context, req saas.CreateCustomerRequest) (*saas.RemoteCustomer, error) {
	f.mu.Lock()
	f.createCustomerCalls = append(f.createCustomerCalls, req)
	f.mu.Unlock()
	if f.createCustomerFn != nil {
		return f.createCustomerFn(req)
	}
	return &saas.RemoteCustomer{
		ID:        "cust-1",
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
	}, nil
}

func (f *fakePlatform) GetCustomer(_ context.Context, email string) (*saas.RemoteCustomer, error) {
	if f.getCustomerFn != nil {
		return f.getCustomerFn(email)
	}
	return nil, saas.ErrCustomerNotFound
}

func (f *fakePlatform) LoginCustomer(_ context.Context, email, password string) (*saas.RemoteCustomer, error) {
	f.mu.Lock()
	f.loginCalls = append(f.loginCalls, email)
	f.mu.Unlock()
	if f.loginCustomerFn != nil {
		return f.loginCustomerFn(email, password)
	}
	return nil, saas.ErrCustomerNotFound
}

func (f *fakePlatform) CreateOrder(_ context.Context, req saas.CreateOrderRequest) (*saas.RemoteOrder, error) {
	f.mu.Lock()
	f.createOrderCalls = append(f.createOrderCalls, req)
	f.mu.Unlock()
	if f.createOrderFn != nil {
		return f.createOrderFn(req)
	}
	return &saas.RemoteOrder{ID: "order-" + req.Locker, CustomerID: req.CustomerID, Total: req.Total}, nil
}

func (f *fakePlatform) Forward(context.Context, string, string, []byte) (int, []byte, error) {
	return 200, nil, nil
}

func (f *fakePlatform) orderCalls() []saas.CreateOrderRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]saas.CreateOrderRequest, len(f.createOrderCalls))
	copy(out, f.createOrderCalls)
	return out
}

// fakeCustomerRepo backs the mirror lookup with a map keyed by email.
type fakeCustomerRepo struct {
	byEmail map[string]*models.Customer
	created []*models.Customer
}

func (f *fakeCustomerRepo) Create(customer *models.Customer) error {
	f.created = append(f.created, customer)
	return nil
}

func (f *fakeCustomerRepo) Update(*models.Customer) error { return nil }

func (f *fakeCustomerRepo) GetByEmail(email string) (*models.Customer, error) {
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByExternalID(string) (*models.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Delete(string) error                              { return nil }

type fakeIdentity struct {
	provisioned []string
	err         error
}

func (f *fakeIdentity) Provision(_ context.Context, email, _ string) error {
	f.provisioned = append(f.provisioned, email)
	return f.err
}

type fakeMirror struct {
	mu        sync.Mutex
	customers []models.Customer
	orders    []models.Order
}

func (f *fakeMirror) EnqueueCustomer(customer models.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeMirror) EnqueueOrder(order models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, order)
	return nil
}

type fakeNotifier struct {
	notices []models.Notice
}

func (f *fakeNotifier) Push(_ context.Context, _ string, level models.NoticeLevel, message string) error {
	f.notices = append(f.notices, models.Notice{Level: level, Message: message})
	return nil
}

func (f *fakeNotifier) Drain(context.Context, string) ([]models.Notice, error) {
	out := f.notices
	f.notices = nil
	return out, nil
}

type testEnv struct {
	svc      *DefaultWizardService
	store    *memorySessionStore
	platform *fakePlatform
	repo     *fakeCustomerRepo
	identity *fakeIdentity
	mirror   *fakeMirror
	notifier *fakeNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		store:    newMemorySessionStore(),
		platform: &fakePlatform{},
		repo:     &fakeCustomerRepo{byEmail: map[string]*models.Customer{}},
		identity: &fakeIdentity{},
		mirror:   &fakeMirror{},
		notifier: &fakeNotifier{},
	}
	env.svc = &DefaultWizardService{
		Store:     env.store,
		Platform:  env.platform,
		Customers: env.repo,
		Identity:  env.identity,
		Notifier:  env.notifier,
		Mirror:    env.mirror,
		Logger:    zap.NewNop(),
		Clock:     func() time.Time { return testNow },
	}
	return env
}

// seedSession writes a session directly into the store.
func (e *testEnv) seedSession(session *models.WizardSession) {
	if session.SessionID == "" {
		session.SessionID = "test-session"
	}
	if session.Step == 0 {
		session.Step = 1
	}
	if err := e.store.Save(context.Background(), session); err != nil {
		panic(err)
	}
}

// completeForm returns a form that passes full submission validation.
func completeForm(lockers ...string) models.BookingForm {
	if len(lockers) == 0 {
		lockers = []string{"3"}
	}
	return models.BookingForm{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		Mobile:         "07700900123",
		Address:        "1 Analytical Way",
		Postcode:       "SW1A 1AA",
		Services:       models.ServiceSelection{Laundry: true},
		Lockers:        lockers,
		CollectionDate: "2026-01-09",
	}
}
