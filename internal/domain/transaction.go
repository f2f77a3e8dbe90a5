package domain

import "time"

// Transaction status values. PaymentStatus mirrors whatever the provider last
// reported; Status is the local lifecycle label.
const (
	TxStatusInitiated = "initiated"
	PaymentPending    = "pending"
)

// PaymentTransaction is the local record of a checkout session. SessionID is
// unique and immutable once set; only the reconciler mutates the record.
type PaymentTransaction struct {
	ID               string            `json:"id" bson:"id"`
	SessionID        string            `json:"session_id" bson:"session_id"`
	Amount           float64           `json:"amount" bson:"amount"`
	Currency         string            `json:"currency" bson:"currency"`
	PackageType      string            `json:"package_type" bson:"package_type"`
	CourseID         string            `json:"course_id,omitempty" bson:"course_id,omitempty"`
	Metadata         map[string]string `json:"metadata" bson:"metadata"`
	PaymentStatus    string            `json:"payment_status" bson:"payment_status"`
	Status           string            `json:"status" bson:"status"`
	WebhookEventID   string            `json:"webhook_event_id,omitempty" bson:"webhook_event_id,omitempty"`
	WebhookEventType string            `json:"webhook_event_type,omitempty" bson:"webhook_event_type,omitempty"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}

// CreateCheckoutRequest is the input for creating a checkout session.
type CreateCheckoutRequest struct {
	PackageType string            `json:"package_type" validate:"required"`
	CourseID    string            `json:"course_id,omitempty"`
	SuccessURL  string            `json:"success_url" validate:"required,url"`
	CancelURL   string            `json:"cancel_url" validate:"required,url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// CheckoutResponse returns the provider redirect URL for the new session.
type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CheckoutStatusResponse is the composite view of local + provider state.
type CheckoutStatusResponse struct {
	SessionID     string            `json:"session_id"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   float64           `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}
