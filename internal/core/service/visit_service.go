package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// InsightSystemPrompt is the fixed instruction for the report-card narrative.
// Injected via the constructor so the pipeline is testable without a live
// text-generation backend.
const InsightSystemPrompt = "You are a pet care AI that generates brief, caring insights about a pet's visit. Be warm and professional. Keep it to 2-3 sentences."

// VisitService produces report cards and activity feed entries per booking.
type VisitService struct {
	reportRepo    ports.ReportCardRepository
	feedRepo      ports.ActivityFeedRepository
	completer     ports.ChatCompleter
	insightPrompt string
	logger        zerolog.Logger
}

func NewVisitService(
	reportRepo ports.ReportCardRepository,
	feedRepo ports.ActivityFeedRepository,
	completer ports.ChatCompleter,
	insightPrompt string,
	logger zerolog.Logger,
) *VisitService {
	if insightPrompt == "" {
		insightPrompt = InsightSystemPrompt
	}
	return &VisitService{
		reportRepo:    reportRepo,
		feedRepo:      feedRepo,
		completer:     completer,
		insightPrompt: insightPrompt,
		logger:        logger,
	}
}

// CreateReportCard validates the visit payload, synthesizes a narrative
// insight, and persists the card. Booking and pet references are accepted
// as-is; referential integrity is not enforced at this layer. The insight
// degrades to an empty string when the generator is unavailable; card
// creation never fails because of it.
func (s *VisitService) CreateReportCard(ctx context.Context, input ports.CreateReportCardInput) (*domain.ReportCard, error) {
	var bad []string
	if input.BookingID == "" {
		bad = append(bad, "booking_id is required")
	}
	if input.PetID == "" {
		bad = append(bad, "pet_id is required")
	}
	if !domain.ValidMood(input.Mood) {
		bad = append(bad, fmt.Sprintf("mood %q is not a known mood", input.Mood))
	}
	if !domain.ValidHealthStatus(input.HealthStatus) {
		bad = append(bad, fmt.Sprintf("health_status %q is not a known health status", input.HealthStatus))
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(bad, "; "))
	}

	insight := s.generateInsight(ctx, input)

	var track []domain.GPSPoint
	for _, p := range input.GPSTrack {
		track = append(track, domain.GPSPoint{Lat: p.Lat, Lng: p.Lng, Timestamp: p.Timestamp})
	}

	card := &domain.ReportCard{
		ID:               uuid.NewString(),
		BookingID:        input.BookingID,
		PetID:            input.PetID,
		SitterID:         input.SitterID,
		Mood:             domain.Mood(input.Mood),
		HealthStatus:     domain.HealthStatus(input.HealthStatus),
		FeedingCompleted: input.FeedingCompleted,
		WalkCompleted:    input.WalkCompleted,
		WalkDuration:     input.WalkDuration,
		WalkDistance:     input.WalkDistance,
		GPSTrack:         track,
		Activities:       input.Activities,
		Notes:            input.Notes,
		AIInsights:       insight,
		PhotoURLs:        input.PhotoURLs,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.reportRepo.Create(ctx, card); err != nil {
		s.logger.Error().Err(err).Str("booking_id", input.BookingID).Msg("failed to create report card")
		return nil, err
	}

	s.logger.Info().
		Str("report_card_id", card.ID).
		Str("booking_id", card.BookingID).
		Str("pet_id", card.PetID).
		Msg("report card created")

	return card, nil
}

// generateInsight calls the text-generation collaborator with a summary of
// the visit fields. Any failure or empty completion yields "".
func (s *VisitService) generateInsight(ctx context.Context, input ports.CreateReportCardInput) string {
	walk := "N/A"
	if input.WalkCompleted {
		walk = fmt.Sprintf("%d min, %s mi", input.WalkDuration, input.WalkDistance)
	}
	feeding := "N/A"
	if input.FeedingCompleted {
		feeding = "Complete"
	}

	summary := fmt.Sprintf(
		"Pet visit report: Mood: %s, Health: %s, Activities: %s, Walk: %s, Feeding: %s. Generate a brief AI insight about this visit.",
		input.Mood, input.HealthStatus, input.Activities, walk, feeding,
	)

	text, err := s.completer.Complete(ctx, []ports.ChatPrompt{
		{Role: "system", Content: s.insightPrompt},
		{Role: "user", Content: summary},
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("booking_id", input.BookingID).Msg("insight generation failed, storing empty insight")
		return ""
	}
	return text
}

// ReportCardsByPet returns the pet's report history, newest first.
// Degrades to an empty list on store failure.
func (s *VisitService) ReportCardsByPet(ctx context.Context, petID string) ([]*domain.ReportCard, error) {
	cards, err := s.reportRepo.ListByPet(ctx, petID)
	if err != nil {
		s.logger.Warn().Err(err).Str("pet_id", petID).Msg("report card listing degraded to empty")
		return []*domain.ReportCard{}, nil
	}
	return cards, nil
}

// ReportCardsByBooking returns report cards for one booking, newest first.
func (s *VisitService) ReportCardsByBooking(ctx context.Context, bookingID string) ([]*domain.ReportCard, error) {
	cards, err := s.reportRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Warn().Err(err).Str("booking_id", bookingID).Msg("report card listing degraded to empty")
		return []*domain.ReportCard{}, nil
	}
	return cards, nil
}

// CreateActivityItem appends one event to a booking's activity feed.
func (s *VisitService) CreateActivityItem(ctx context.Context, input ports.CreateActivityItemInput) (*domain.ActivityFeedItem, error) {
	if input.BookingID == "" || input.PetID == "" {
		return nil, fmt.Errorf("%w: booking_id and pet_id are required", domain.ErrValidation)
	}
	if !domain.ValidActivityType(input.Type) {
		return nil, fmt.Errorf("%w: %q is not a known activity type", domain.ErrValidation, input.Type)
	}

	now := time.Now().UTC()
	item := &domain.ActivityFeedItem{
		ID:        uuid.NewString(),
		BookingID: input.BookingID,
		PetID:     input.PetID,
		Type:      domain.ActivityType(input.Type),
		Content:   input.Content,
		MediaURL:  input.MediaURL,
		Timestamp: now,
		CreatedAt: now,
	}

	if err := s.feedRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("booking_id", input.BookingID).Msg("failed to append activity feed item")
		return nil, err
	}
	return item, nil
}

// ActivityByBooking returns the booking's feed, newest first. Degrades to an
// empty list on store failure.
func (s *VisitService) ActivityByBooking(ctx context.Context, bookingID string) ([]*domain.ActivityFeedItem, error) {
	items, err := s.feedRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Warn().Err(err).Str("booking_id", bookingID).Msg("activity feed listing degraded to empty")
		return []*domain.ActivityFeedItem{}, nil
	}
	return items, nil
}
