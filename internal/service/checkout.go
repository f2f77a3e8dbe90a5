package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
	"github.com/shorajtomer/portfolio-backend/pkg/payment"
)

const checkoutCurrency = "usd"

// CheckoutService orchestrates checkout-session creation and reconciles local
// transaction records against provider state.
type CheckoutService struct {
	courses  CourseStore
	txs      TransactionStore
	gateway  payment.Gateway
	validate *validator.Validate
}

// NewCheckoutService creates a CheckoutService. gateway may be nil when the
// provider key is not configured; every operation then fails with a 500.
func NewCheckoutService(courses CourseStore, txs TransactionStore, gateway payment.Gateway) *CheckoutService {
	return &CheckoutService{
		courses:  courses,
		txs:      txs,
		gateway:  gateway,
		validate: validator.New(),
	}
}

// CreateSession resolves the chargeable amount server-side, creates a provider
// checkout session, and records a pending local transaction. baseURL is the
// scheme+host of the inbound request, used to derive the webhook callback URL.
func (s *CheckoutService) CreateSession(ctx context.Context, req *domain.CreateCheckoutRequest, baseURL string) (*domain.CheckoutResponse, error) {
	if s.gateway == nil {
		return nil, domain.ErrUnconfigured("Stripe API key not configured")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrBadRequest(formatValidationErrors(err))
	}

	pkg, ok := domain.GetPackage(req.PackageType)
	if !ok {
		return nil, domain.ErrBadRequest("Invalid package type")
	}

	metadata := make(map[string]string, len(req.Metadata)+4)
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	// Prices always come from the catalog or the package table, never from
	// the caller.
	var amount float64
	var productName string
	if pkg.Type == domain.PackageIndividual {
		if req.CourseID == "" {
			return nil, domain.ErrBadRequest("course_id is required for individual packages")
		}
		course, err := s.courses.FindByID(ctx, req.CourseID)
		if err != nil {
			return nil, domain.ErrInternal("failed to look up course", err)
		}
		if course == nil {
			return nil, domain.ErrNotFound("Course not found")
		}
		amount = course.Price
		productName = course.Title
		metadata["course_id"] = course.ID
		metadata["course_title"] = course.Title
	} else {
		amount = pkg.Price
		productName = pkg.Name
	}

	metadata["package_type"] = pkg.Type
	metadata["timestamp"] = time.Now().Format(time.RFC3339)

	session, err := s.gateway.CreateCheckoutSession(ctx, payment.CheckoutSessionRequest{
		Amount:      amount,
		Currency:    checkoutCurrency,
		ProductName: productName,
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
		WebhookURL:  strings.TrimRight(baseURL, "/") + "/api/webhook/stripe",
		Metadata:    metadata,
	})
	if err != nil {
		return nil, domain.ErrInternal("Failed to create checkout session", err)
	}

	now := time.Now()
	tx := &domain.PaymentTransaction{
		ID:            uuid.New().String(),
		SessionID:     session.SessionID,
		Amount:        amount,
		Currency:      checkoutCurrency,
		PackageType:   pkg.Type,
		CourseID:      req.CourseID,
		Metadata:      metadata,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.TxStatusInitiated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.txs.Insert(ctx, tx); err != nil {
		return nil, domain.ErrInternal("failed to store transaction", err)
	}

	return &domain.CheckoutResponse{URL: session.URL, SessionID: session.SessionID}, nil
}

// GetStatus returns the composite local+provider view of a session, mirroring
// the provider-reported payment status into the local record when it changed.
// Last writer wins; updates are idempotent snapshots of provider truth.
func (s *CheckoutService) GetStatus(ctx context.Context, sessionID string) (*domain.CheckoutStatusResponse, error) {
	if s.gateway == nil {
		return nil, domain.ErrUnconfigured("Stripe API key not configured")
	}

	tx, err := s.txs.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrInternal("failed to look up transaction", err)
	}
	if tx == nil {
		return nil, domain.ErrNotFound("Payment transaction not found")
	}

	status, err := s.gateway.GetCheckoutStatus(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrInternal("Failed to get checkout status", err)
	}

	if tx.PaymentStatus != status.PaymentStatus {
		if err := s.txs.UpdateStatus(ctx, sessionID, status.Status, status.PaymentStatus); err != nil {
			return nil, domain.ErrInternal("failed to update transaction", err)
		}
	}

	return &domain.CheckoutStatusResponse{
		SessionID:     sessionID,
		Status:        status.Status,
		PaymentStatus: status.PaymentStatus,
		AmountTotal:   status.AmountTotal,
		Currency:      status.Currency,
		Metadata:      status.Metadata,
	}, nil
}

// HandleWebhook verifies and parses a provider notification, then records the
// reported payment state when the event references a known session.
func (s *CheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*payment.WebhookEvent, error) {
	if s.gateway == nil {
		return nil, domain.ErrUnconfigured("Stripe API key not configured")
	}

	event, err := s.gateway.HandleWebhook(payload, signature)
	if err != nil {
		return nil, domain.ErrInternal("Webhook processing failed", err)
	}

	if event.SessionID != "" {
		if err := s.txs.RecordWebhook(ctx, event.SessionID, event.PaymentStatus, event.EventID, event.EventType); err != nil {
			return nil, domain.ErrInternal("failed to record webhook", err)
		}
	}

	return event, nil
}

func formatValidationErrors(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
