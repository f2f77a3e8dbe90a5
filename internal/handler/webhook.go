package handler

import (
	"io"
	"net/http"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
	"github.com/shorajtomer/portfolio-backend/internal/service"
)

type WebhookHandler struct {
	svc *service.CheckoutService
}

func NewWebhookHandler(svc *service.CheckoutService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// HandleStripe handles POST /api/webhook/stripe. The raw body is passed
// through untouched: signature verification hashes the exact bytes.
func (h *WebhookHandler) HandleStripe(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		Error(w, domain.ErrBadRequest("failed to read body"))
		return
	}

	event, err := h.svc.HandleWebhook(r.Context(), body, r.Header.Get("Stripe-Signature"))
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, map[string]string{
		"status":     "success",
		"event_type": event.EventType,
	})
}
