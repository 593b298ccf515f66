package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// ChatSystemPrompt is the fixed domain prompt for the public assistant.
// Injected via the constructor; this constant is the default.
const ChatSystemPrompt = `You are PawSitting's AI assistant for a pet and farm animal sitting business in Northern Colorado run by a teenager named Reese.

SERVICE AREAS: Wellington, Fort Collins, Loveland, Evans, Timnath, Berthoud, and all surrounding Northern Colorado (NoCo) areas.

ANIMAL TYPES WE CARE FOR:
- Dogs, Cats (standard pet sitting)
- Horses, Goats, Peacocks, Cattle, Chickens (farm & ranch)
- Reptiles, Small mammals, and other exotic animals

SERVICE TIERS:
1. Basic Drop-In ($20-40/visit) - Quick 30-min check-ins
2. Standard Care ($40-80/visit) - Full visits with walks, feeding, play
3. Premium Care ($60-120/visit) - Extended care with detailed reports, GPS tracking
4. Farm & Ranch ($100-200+/visit) - Our Blue Ocean specialty! Full farm/ranch animal care

KEY FEATURES:
- Pet Report Cards after every visit (photos, health/mood logging, AI insights)
- GPS Walk Tracking for dogs
- Real-time Pet Cam (photo/video activity feed)
- AI-powered health and mood analysis
- Stripe payments for easy booking

BLUE OCEAN DIFFERENTIATOR: We are the ONLY pet sitting service in Northern Colorado that handles farm animals, livestock, and exotic animals. No competitor offers this.

AI FOR GOOD: This business shows how AI helps a teen entrepreneur provide 24/7 customer service. Reese uses AI to compete with established businesses while going to school.

Be friendly, helpful, and knowledgeable. Answer questions about services, pricing, availability, and animal care. If someone wants to book, direct them to the booking page. Keep responses concise but warm.`

const (
	// chatFallbackReply is returned whenever the collaborator call fails.
	chatFallbackReply = "I'm having a little trouble right now, but I'd love to help! You can book a visit directly on our booking page, or try asking me again in a moment. 🐾"
	// chatEmptyReply is returned when the collaborator answers with no text.
	chatEmptyReply = "I'm here to help! Ask me about our pet sitting services, pricing, or service areas."
)

const maxChatMessageLen = 2000

// ChatService relays visitor messages to the text-generation collaborator
// and keeps a best-effort transcript per session.
type ChatService struct {
	repo         ports.ChatRepository
	completer    ports.ChatCompleter
	systemPrompt string
	logger       zerolog.Logger
}

func NewChatService(repo ports.ChatRepository, completer ports.ChatCompleter, systemPrompt string, logger zerolog.Logger) *ChatService {
	if systemPrompt == "" {
		systemPrompt = ChatSystemPrompt
	}
	return &ChatService{repo: repo, completer: completer, systemPrompt: systemPrompt, logger: logger}
}

// Send validates the message, invokes the collaborator, and always returns a
// non-empty reply. Transcript persistence is best-effort and never fails the
// call.
func (s *ChatService) Send(ctx context.Context, input ports.SendChatInput) (string, error) {
	// Length is counted in characters, not bytes, so multi-byte input is
	// not penalized.
	if input.Message == "" || utf8.RuneCountInString(input.Message) > maxChatMessageLen {
		return "", fmt.Errorf("%w: message must be between 1 and %d characters", domain.ErrValidation, maxChatMessageLen)
	}

	reply, err := s.completer.Complete(ctx, []ports.ChatPrompt{
		{Role: "system", Content: s.systemPrompt},
		{Role: "user", Content: input.Message},
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("chat completion failed, using fallback reply")
		reply = chatFallbackReply
	} else if reply == "" {
		reply = chatEmptyReply
	}

	s.saveTurn(ctx, input, reply)
	return reply, nil
}

// saveTurn persists both sides of the exchange. Failures are logged only.
func (s *ChatService) saveTurn(ctx context.Context, input ports.SendChatInput, reply string) {
	if input.SessionID == "" {
		return
	}
	now := time.Now().UTC()
	turns := []*domain.ChatMessage{
		{ID: uuid.NewString(), SessionID: input.SessionID, UserID: input.UserID, Role: "user", Content: input.Message, CreatedAt: now},
		{ID: uuid.NewString(), SessionID: input.SessionID, UserID: input.UserID, Role: "assistant", Content: reply, CreatedAt: now},
	}
	for _, msg := range turns {
		if err := s.repo.Save(ctx, msg); err != nil {
			s.logger.Warn().Err(err).Str("session_id", input.SessionID).Msg("failed to save chat message")
			return
		}
	}
}

// History returns the last messages of a session, newest first. Degrades to
// an empty list on store failure.
func (s *ChatService) History(ctx context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	msgs, err := s.repo.History(ctx, sessionID, limit)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("chat history degraded to empty")
		return []*domain.ChatMessage{}, nil
	}
	return msgs, nil
}
