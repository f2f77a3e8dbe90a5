package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeGateway implements Gateway on top of Stripe Checkout.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway creates a gateway with its own API client. webhookSecret is
// the endpoint signing secret (whsec_...), distinct from the API key.
func NewStripeGateway(apiKey, webhookSecret string) *StripeGateway {
	return &StripeGateway{
		api:           client.New(apiKey, nil),
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.WebhookURL != "" {
		params.AddMetadata("webhook_url", req.WebhookURL)
	}

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create checkout session: %w", err)
	}
	return &CheckoutSession{SessionID: s.ID, URL: s.URL}, nil
}

func (g *StripeGateway) GetCheckoutStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: get checkout session %s: %w", sessionID, err)
	}
	return &CheckoutStatus{
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   fromMinorUnits(s.AmountTotal),
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}, nil
}

func (g *StripeGateway) HandleWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("stripe: webhook verification: %w", err)
	}

	out := &WebhookEvent{
		EventID:   event.ID,
		EventType: string(event.Type),
	}

	// Checkout events carry the session object; anything else is acknowledged
	// without a session reference.
	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired",
		"checkout.session.async_payment_succeeded", "checkout.session.async_payment_failed":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("stripe: parse webhook session: %w", err)
		}
		out.SessionID = s.ID
		out.PaymentStatus = string(s.PaymentStatus)
	}

	return out, nil
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}
