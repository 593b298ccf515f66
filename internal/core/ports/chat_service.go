package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// SendChatInput is one user turn of the assistant conversation.
type SendChatInput struct {
	SessionID string
	UserID    string // empty for anonymous visitors
	Message   string
}

// ChatService relays visitor messages to the assistant collaborator.
// Send always produces a usable reply, even when the collaborator is down.
type ChatService interface {
	Send(ctx context.Context, input SendChatInput) (string, error)
	History(ctx context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error)
}
