package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pawsitting/booking-system/internal/api/metrics"
	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// ChatHandler handles HTTP requests for the assistant conversation.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type chatHistoryResponse struct {
	Messages []*domain.ChatMessage `json:"messages"`
}

// Send handles POST /v1/chat.
//
// @Summary      Send a message to the assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "User message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id := optionalIdentity(c)
	reply, err := h.service.Send(c.Request().Context(), ports.SendChatInput{
		SessionID: req.SessionID,
		UserID:    id.UserID,
		Message:   req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.ChatRequestsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

// History handles GET /v1/chat/history.
//
// @Summary      List recent messages for a session
// @Tags         chat
// @Produce      json
// @Param        session_id  query     string  true   "Session id"
// @Param        limit       query     int     false  "Max messages (default 20)"
// @Success      200         {object}  chatHistoryResponse
// @Failure      400         {object}  map[string]string
// @Router       /v1/chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	messages, err := h.service.History(c.Request().Context(), sessionID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatHistoryResponse{Messages: messages})
}
