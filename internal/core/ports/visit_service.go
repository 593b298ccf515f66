package ports

import (
	"context"
	"time"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// GPSPointInput is one sample of a walk trace.
type GPSPointInput struct {
	Lat       float64
	Lng       float64
	Timestamp time.Time
}

// CreateReportCardInput carries the data for a new visit report card.
// SitterID is taken from the acting admin identity.
type CreateReportCardInput struct {
	BookingID        string
	PetID            string
	SitterID         string
	Mood             string
	HealthStatus     string
	FeedingCompleted bool
	WalkCompleted    bool
	WalkDuration     int
	WalkDistance     string
	GPSTrack         []GPSPointInput
	Activities       string
	Notes            string
	PhotoURLs        []string
}

// CreateActivityItemInput carries the data for a new activity feed event.
type CreateActivityItemInput struct {
	BookingID string
	PetID     string
	Type      string
	Content   string
	MediaURL  string
}

// VisitService owns the visit reporting pipeline: report cards with a
// generated narrative insight, and the append-only activity feed.
type VisitService interface {
	CreateReportCard(ctx context.Context, input CreateReportCardInput) (*domain.ReportCard, error)
	ReportCardsByPet(ctx context.Context, petID string) ([]*domain.ReportCard, error)
	ReportCardsByBooking(ctx context.Context, bookingID string) ([]*domain.ReportCard, error)
	CreateActivityItem(ctx context.Context, input CreateActivityItemInput) (*domain.ActivityFeedItem, error)
	ActivityByBooking(ctx context.Context, bookingID string) ([]*domain.ActivityFeedItem, error)
}
