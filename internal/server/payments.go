package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v84"
)

// Payment processing is disabled in this deployment. Both endpoints are
// kept registered so the donate page and Stripe's webhook retries get
// well-formed responses.

func (s *Service) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	s.jsonError(w, http.StatusServiceUnavailable,
		"Payment processing is temporarily disabled. Please contact us directly to make a donation.")
}

// handleStripeWebhook acknowledges every delivery without signature
// verification and without writing donations. The payload is decoded
// leniently so the event type still shows up in the logs.
func (s *Service) handleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var event stripe.Event
		if err := json.Unmarshal(body, &event); err == nil && event.Type != "" {
			s.logger.WithField("event_type", event.Type).Info("stripe webhook received while payments disabled")
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"received": true,
		"message":  "Webhook processing is temporarily disabled",
	})
}
