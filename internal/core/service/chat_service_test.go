package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

type stubChatRepo struct {
	saveErr    error
	historyErr error
	saved      []*domain.ChatMessage
	lastLimit  int
}

func (r *stubChatRepo) Save(_ context.Context, msg *domain.ChatMessage) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, msg)
	return nil
}

func (r *stubChatRepo) History(_ context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	r.lastLimit = limit
	if r.historyErr != nil {
		return nil, r.historyErr
	}
	return r.saved, nil
}

func TestChatSend_EmptyMessageRejected(t *testing.T) {
	svc := NewChatService(&stubChatRepo{}, &stubCompleter{}, "", zerolog.Nop())

	_, err := svc.Send(context.Background(), ports.SendChatInput{Message: ""})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestChatSend_OverlongMessageRejected(t *testing.T) {
	completer := &stubCompleter{reply: "hi"}
	svc := NewChatService(&stubChatRepo{}, completer, "", zerolog.Nop())

	_, err := svc.Send(context.Background(), ports.SendChatInput{Message: strings.Repeat("a", 2001)})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(completer.received) != 0 {
		t.Fatalf("collaborator must not be called for invalid input")
	}
}

func TestChatSend_BoundaryLengthAccepted(t *testing.T) {
	completer := &stubCompleter{reply: "hi"}
	svc := NewChatService(&stubChatRepo{}, completer, "", zerolog.Nop())

	if _, err := svc.Send(context.Background(), ports.SendChatInput{Message: strings.Repeat("a", 2000)}); err != nil {
		t.Fatalf("2000 chars should be accepted: %v", err)
	}
}

func TestChatSend_MultibyteCountedAsCharacters(t *testing.T) {
	completer := &stubCompleter{reply: "hi"}
	svc := NewChatService(&stubChatRepo{}, completer, "", zerolog.Nop())

	// 2000 runes but 8000 bytes: must pass the length check.
	if _, err := svc.Send(context.Background(), ports.SendChatInput{Message: strings.Repeat("🐾", 2000)}); err != nil {
		t.Fatalf("2000 multi-byte chars should be accepted: %v", err)
	}
	if _, err := svc.Send(context.Background(), ports.SendChatInput{Message: strings.Repeat("é", 2001)}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("2001 chars should be rejected, got %v", err)
	}
}

func TestChatSend_FallbackOnCompleterFailure(t *testing.T) {
	completer := &stubCompleter{err: errors.New("upstream down")}
	svc := NewChatService(&stubChatRepo{}, completer, "", zerolog.Nop())

	reply, err := svc.Send(context.Background(), ports.SendChatInput{Message: "Do you sit goats?"})
	if err != nil {
		t.Fatalf("send must not fail when collaborator is down: %v", err)
	}
	if reply != chatFallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}

func TestChatSend_EmptyCompletionGetsCannedReply(t *testing.T) {
	svc := NewChatService(&stubChatRepo{}, &stubCompleter{reply: ""}, "", zerolog.Nop())

	reply, err := svc.Send(context.Background(), ports.SendChatInput{Message: "Hello?"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply != chatEmptyReply {
		t.Fatalf("expected canned empty-completion reply, got %q", reply)
	}
}

func TestChatSend_SystemPromptSentFirst(t *testing.T) {
	completer := &stubCompleter{reply: "hi"}
	svc := NewChatService(&stubChatRepo{}, completer, "", zerolog.Nop())

	if _, err := svc.Send(context.Background(), ports.SendChatInput{Message: "Hello"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	msgs := completer.received[0]
	if len(msgs) != 2 || msgs[0].Role != "system" || msgs[1].Role != "user" {
		t.Fatalf("expected [system, user] prompts, got %+v", msgs)
	}
	if !strings.Contains(msgs[0].Content, "PawSitting") {
		t.Fatalf("default system prompt not applied")
	}
}

func TestChatSend_TranscriptSavedPerSession(t *testing.T) {
	repo := &stubChatRepo{}
	svc := NewChatService(repo, &stubCompleter{reply: "Sure!"}, "", zerolog.Nop())

	if _, err := svc.Send(context.Background(), ports.SendChatInput{SessionID: "sess_1", UserID: "usr_1", Message: "Hi"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(repo.saved) != 2 {
		t.Fatalf("expected user+assistant turns saved, got %d", len(repo.saved))
	}
	if repo.saved[0].Role != "user" || repo.saved[1].Role != "assistant" {
		t.Fatalf("turn roles wrong: %s, %s", repo.saved[0].Role, repo.saved[1].Role)
	}
}

func TestChatSend_NoSessionNoTranscript(t *testing.T) {
	repo := &stubChatRepo{}
	svc := NewChatService(repo, &stubCompleter{reply: "Sure!"}, "", zerolog.Nop())

	if _, err := svc.Send(context.Background(), ports.SendChatInput{Message: "Hi"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("anonymous sessionless turns must not be persisted")
	}
}

func TestChatSend_SaveFailureDoesNotFailCall(t *testing.T) {
	repo := &stubChatRepo{saveErr: domain.ErrStoreUnavailable}
	svc := NewChatService(repo, &stubCompleter{reply: "Sure!"}, "", zerolog.Nop())

	reply, err := svc.Send(context.Background(), ports.SendChatInput{SessionID: "sess_1", Message: "Hi"})
	if err != nil {
		t.Fatalf("send must not fail on transcript errors: %v", err)
	}
	if reply != "Sure!" {
		t.Fatalf("reply should be unaffected, got %q", reply)
	}
}

func TestChatHistory_DefaultLimit(t *testing.T) {
	repo := &stubChatRepo{}
	svc := NewChatService(repo, &stubCompleter{}, "", zerolog.Nop())

	if _, err := svc.History(context.Background(), "sess_1", 0); err != nil {
		t.Fatalf("history: %v", err)
	}
	if repo.lastLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", repo.lastLimit)
	}
}

func TestChatHistory_DegradesToEmpty(t *testing.T) {
	repo := &stubChatRepo{historyErr: domain.ErrStoreUnavailable}
	svc := NewChatService(repo, &stubCompleter{}, "", zerolog.Nop())

	msgs, err := svc.History(context.Background(), "sess_1", 10)
	if err != nil {
		t.Fatalf("history should degrade, got %v", err)
	}
	if msgs == nil || len(msgs) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
