package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shorajtomer/portfolio-backend/internal/domain"
	"github.com/shorajtomer/portfolio-backend/internal/service"
)

type PaymentHandler struct {
	svc *service.CheckoutService
}

func NewPaymentHandler(svc *service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreateCheckout handles POST /api/payments/v1/checkout/session.
func (h *PaymentHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCheckoutRequest
	if err := DecodeJSON(r, &req); err != nil {
		Error(w, err)
		return
	}

	resp, err := h.svc.CreateSession(r.Context(), &req, baseURL(r))
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, resp)
}

// GetStatus handles GET /api/payments/v1/checkout/status/{session_id}.
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.GetStatus(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		Error(w, err)
		return
	}

	JSON(w, http.StatusOK, resp)
}

// baseURL reconstructs the scheme+host the client used, preferring proxy
// headers so webhook callback URLs survive a reverse proxy.
func baseURL(r *http.Request) string {
	scheme := "http"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
