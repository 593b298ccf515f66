package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawsitting/booking-system/internal/api/metrics"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for checkout session creation.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type checkoutRequest struct {
	ProductKey string `json:"product_key" validate:"required"`
	BookingID  string `json:"booking_id"`
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// CreateCheckout handles POST /v1/payments/checkout.
//
// @Summary      Create a hosted checkout session
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  true  "Product selection"
// @Success      200   {object}  checkoutResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/payments/checkout [post]
func (h *PaymentHandler) CreateCheckout(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.CreateCheckout(c.Request().Context(), ports.CheckoutInput{
		UserID:     id.UserID,
		UserName:   id.Name,
		UserEmail:  id.Email,
		ProductKey: req.ProductKey,
		BookingID:  req.BookingID,
	})
	if err != nil {
		return err
	}

	metrics.CheckoutSessionsTotal.WithLabelValues(req.ProductKey).Inc()
	return c.JSON(http.StatusOK, checkoutResponse{CheckoutURL: result.CheckoutURL})
}
