package service

import (
	"context"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
)

// CourseStore is the course-collection surface the services need. Implemented
// by repository.CourseRepository.
type CourseStore interface {
	List(ctx context.Context) ([]domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, courses []domain.Course) error
}

// TransactionStore is the payment-transaction surface. Implemented by
// repository.TransactionRepository.
type TransactionStore interface {
	Insert(ctx context.Context, tx *domain.PaymentTransaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, sessionID, status, paymentStatus string) error
	RecordWebhook(ctx context.Context, sessionID, paymentStatus, eventID, eventType string) error
}
