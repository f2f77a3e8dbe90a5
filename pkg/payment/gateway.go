package payment

import "context"

// Payment status values as reported by the provider.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusExpired = "expired"
)

// CheckoutSessionRequest describes a provider-hosted checkout to create.
// Amount is in whole currency units (dollars); providers that bill in minor
// units convert internally.
type CheckoutSessionRequest struct {
	Amount      float64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	WebhookURL  string
	Metadata    map[string]string
}

// CheckoutSession is the provider's handle for a created session.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus is a snapshot of provider-side session state.
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   float64
	Currency      string
	Metadata      map[string]string
}

// WebhookEvent is a verified, parsed provider notification.
type WebhookEvent struct {
	EventID       string
	EventType     string
	SessionID     string
	PaymentStatus string
}

// Gateway defines the interface for payment providers.
type Gateway interface {
	// CreateCheckoutSession creates a hosted checkout session and returns its
	// id and redirect URL.
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error)
	// GetCheckoutStatus fetches the live state of a session.
	GetCheckoutStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error)
	// HandleWebhook verifies the signature and parses the event payload
	// (implementation specific).
	HandleWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
