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

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubReportRepo struct {
	createErr error
	listErr   error
	created   []*domain.ReportCard
}

func (r *stubReportRepo) Create(_ context.Context, rc *domain.ReportCard) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, rc)
	return nil
}

func (r *stubReportRepo) ListByPet(_ context.Context, petID string) ([]*domain.ReportCard, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.ReportCard
	for _, c := range r.created {
		if c.PetID == petID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubReportRepo) ListByBooking(_ context.Context, bookingID string) ([]*domain.ReportCard, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.ReportCard
	for _, c := range r.created {
		if c.BookingID == bookingID {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubFeedRepo struct {
	createErr error
	listErr   error
	created   []*domain.ActivityFeedItem
}

func (r *stubFeedRepo) Create(_ context.Context, item *domain.ActivityFeedItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, item)
	return nil
}

func (r *stubFeedRepo) ListByBooking(_ context.Context, bookingID string) ([]*domain.ActivityFeedItem, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.created, nil
}

// stubCompleter records the prompts it receives and returns a canned reply.
type stubCompleter struct {
	reply    string
	err      error
	received [][]ports.ChatPrompt
}

func (s *stubCompleter) Complete(_ context.Context, messages []ports.ChatPrompt) (string, error) {
	s.received = append(s.received, messages)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func validReportInput() ports.CreateReportCardInput {
	return ports.CreateReportCardInput{
		BookingID:        "bk_1",
		PetID:            "pet_1",
		SitterID:         "usr_admin",
		Mood:             "happy",
		HealthStatus:     "excellent",
		FeedingCompleted: true,
		WalkCompleted:    true,
		WalkDuration:     30,
		WalkDistance:     "1.2",
		Activities:       "fetch, brushing",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCreateReportCard_ValidationCollectsIssues(t *testing.T) {
	svc := NewVisitService(&stubReportRepo{}, &stubFeedRepo{}, &stubCompleter{}, "", zerolog.Nop())

	_, err := svc.CreateReportCard(context.Background(), ports.CreateReportCardInput{
		Mood:         "grumpy",
		HealthStatus: "excellent",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	for _, want := range []string{"booking_id", "pet_id", "grumpy"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q: %v", want, err)
		}
	}
}

func TestCreateReportCard_StoresGeneratedInsight(t *testing.T) {
	repo := &stubReportRepo{}
	completer := &stubCompleter{reply: "Biscuit had a wonderful visit."}
	svc := NewVisitService(repo, &stubFeedRepo{}, completer, "", zerolog.Nop())

	card, err := svc.CreateReportCard(context.Background(), validReportInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if card.AIInsights != "Biscuit had a wonderful visit." {
		t.Fatalf("insight not stored: %q", card.AIInsights)
	}
	if len(repo.created) != 1 {
		t.Fatalf("card not persisted")
	}

	// The generator sees a field summary, not raw structs.
	if len(completer.received) != 1 {
		t.Fatalf("expected one completion call, got %d", len(completer.received))
	}
	user := completer.received[0][1].Content
	for _, want := range []string{"Mood: happy", "Health: excellent", "30 min, 1.2 mi", "Feeding: Complete"} {
		if !strings.Contains(user, want) {
			t.Errorf("summary missing %q: %s", want, user)
		}
	}
}

func TestCreateReportCard_InsightFailureStoresEmptyString(t *testing.T) {
	repo := &stubReportRepo{}
	completer := &stubCompleter{err: errors.New("upstream down")}
	svc := NewVisitService(repo, &stubFeedRepo{}, completer, "", zerolog.Nop())

	card, err := svc.CreateReportCard(context.Background(), validReportInput())
	if err != nil {
		t.Fatalf("creation must not fail on insight errors: %v", err)
	}
	if card.AIInsights != "" {
		t.Fatalf("expected empty insight, got %q", card.AIInsights)
	}
	if len(repo.created) != 1 {
		t.Fatalf("card should still be persisted")
	}
}

func TestCreateReportCard_SkippedWalkSummarizedAsNA(t *testing.T) {
	completer := &stubCompleter{reply: "ok"}
	svc := NewVisitService(&stubReportRepo{}, &stubFeedRepo{}, completer, "", zerolog.Nop())

	input := validReportInput()
	input.WalkCompleted = false
	input.FeedingCompleted = false
	if _, err := svc.CreateReportCard(context.Background(), input); err != nil {
		t.Fatalf("create: %v", err)
	}

	user := completer.received[0][1].Content
	if !strings.Contains(user, "Walk: N/A") || !strings.Contains(user, "Feeding: N/A") {
		t.Fatalf("skipped walk/feeding should read N/A: %s", user)
	}
}

func TestReportCardsByPet_DegradesToEmpty(t *testing.T) {
	repo := &stubReportRepo{listErr: domain.ErrStoreUnavailable}
	svc := NewVisitService(repo, &stubFeedRepo{}, &stubCompleter{}, "", zerolog.Nop())

	cards, err := svc.ReportCardsByPet(context.Background(), "pet_1")
	if err != nil {
		t.Fatalf("read should degrade, got %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestCreateActivityItem_RejectsUnknownType(t *testing.T) {
	svc := NewVisitService(&stubReportRepo{}, &stubFeedRepo{}, &stubCompleter{}, "", zerolog.Nop())

	_, err := svc.CreateActivityItem(context.Background(), ports.CreateActivityItemInput{
		BookingID: "bk_1",
		PetID:     "pet_1",
		Type:      "selfie",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateActivityItem_AppendsToFeed(t *testing.T) {
	feed := &stubFeedRepo{}
	svc := NewVisitService(&stubReportRepo{}, feed, &stubCompleter{}, "", zerolog.Nop())

	item, err := svc.CreateActivityItem(context.Background(), ports.CreateActivityItemInput{
		BookingID: "bk_1",
		PetID:     "pet_1",
		Type:      "walk_start",
		Content:   "Heading out",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Timestamp.IsZero() {
		t.Fatalf("timestamp not stamped")
	}
	if len(feed.created) != 1 {
		t.Fatalf("item not persisted")
	}
}

func TestActivityByBooking_DegradesToEmpty(t *testing.T) {
	feed := &stubFeedRepo{listErr: domain.ErrStoreUnavailable}
	svc := NewVisitService(&stubReportRepo{}, feed, &stubCompleter{}, "", zerolog.Nop())

	items, err := svc.ActivityByBooking(context.Background(), "bk_1")
	if err != nil {
		t.Fatalf("read should degrade, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
