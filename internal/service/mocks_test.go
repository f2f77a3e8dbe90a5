package service

import (
	"context"
	"errors"
	"sync"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
	"github.com/shorajtomer/portfolio-backend/pkg/payment"
)

// Common test errors
var (
	ErrMockStore   = errors.New("mock store error")
	ErrMockGateway = errors.New("mock gateway error")
)

// MockCourseStore implements CourseStore for testing.
type MockCourseStore struct {
	mu         sync.Mutex
	Courses    []domain.Course
	ListFunc   func(ctx context.Context) ([]domain.Course, error)
	FindFunc   func(ctx context.Context, id string) (*domain.Course, error)
	CountFunc  func(ctx context.Context) (int64, error)
	InsertFunc func(ctx context.Context, courses []domain.Course) error
	Inserted   [][]domain.Course
}

func (m *MockCourseStore) List(ctx context.Context) ([]domain.Course, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.Courses, nil
}

func (m *MockCourseStore) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, id)
	}
	for i := range m.Courses {
		if m.Courses[i].ID == id {
			c := m.Courses[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockCourseStore) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return int64(len(m.Courses)), nil
}

func (m *MockCourseStore) InsertMany(ctx context.Context, courses []domain.Course) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, courses)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Courses = append(m.Courses, courses...)
	m.Inserted = append(m.Inserted, courses)
	return nil
}

// MockTransactionStore implements TransactionStore for testing. Without
// overrides it behaves as an in-memory collection keyed by session id.
type MockTransactionStore struct {
	mu           sync.Mutex
	bySession    map[string]*domain.PaymentTransaction
	InsertFunc   func(ctx context.Context, tx *domain.PaymentTransaction) error
	FindFunc     func(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error)
	UpdateFunc   func(ctx context.Context, sessionID, status, paymentStatus string) error
	WebhookFunc  func(ctx context.Context, sessionID, paymentStatus, eventID, eventType string) error
	UpdateCalls  int
	WebhookCalls int
}

func (m *MockTransactionStore) store() map[string]*domain.PaymentTransaction {
	if m.bySession == nil {
		m.bySession = make(map[string]*domain.PaymentTransaction)
	}
	return m.bySession
}

func (m *MockTransactionStore) Insert(ctx context.Context, tx *domain.PaymentTransaction) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *tx
	m.store()[tx.SessionID] = &cp
	return nil
}

func (m *MockTransactionStore) FindBySessionID(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, sessionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.store()[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (m *MockTransactionStore) UpdateStatus(ctx context.Context, sessionID, status, paymentStatus string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sessionID, status, paymentStatus)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if tx, ok := m.store()[sessionID]; ok {
		tx.Status = status
		tx.PaymentStatus = paymentStatus
	}
	return nil
}

func (m *MockTransactionStore) RecordWebhook(ctx context.Context, sessionID, paymentStatus, eventID, eventType string) error {
	if m.WebhookFunc != nil {
		return m.WebhookFunc(ctx, sessionID, paymentStatus, eventID, eventType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WebhookCalls++
	if tx, ok := m.store()[sessionID]; ok {
		tx.PaymentStatus = paymentStatus
		tx.WebhookEventID = eventID
		tx.WebhookEventType = eventType
	}
	return nil
}

// MockGateway implements payment.Gateway for testing.
type MockGateway struct {
	CreateFunc  func(ctx context.Context, req payment.CheckoutSessionRequest) (*payment.CheckoutSession, error)
	StatusFunc  func(ctx context.Context, sessionID string) (*payment.CheckoutStatus, error)
	WebhookFunc func(payload []byte, signature string) (*payment.WebhookEvent, error)
	CreateCalls int
	StatusCalls int
	LastCreate  payment.CheckoutSessionRequest
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, req payment.CheckoutSessionRequest) (*payment.CheckoutSession, error) {
	m.CreateCalls++
	m.LastCreate = req
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return &payment.CheckoutSession{SessionID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"}, nil
}

func (m *MockGateway) GetCheckoutStatus(ctx context.Context, sessionID string) (*payment.CheckoutStatus, error) {
	m.StatusCalls++
	if m.StatusFunc != nil {
		return m.StatusFunc(ctx, sessionID)
	}
	return &payment.CheckoutStatus{
		Status:        "open",
		PaymentStatus: payment.StatusPending,
		Currency:      "usd",
	}, nil
}

func (m *MockGateway) HandleWebhook(payload []byte, signature string) (*payment.WebhookEvent, error) {
	if m.WebhookFunc != nil {
		return m.WebhookFunc(payload, signature)
	}
	return &payment.WebhookEvent{EventID: "evt_1", EventType: "checkout.session.completed"}, nil
}
