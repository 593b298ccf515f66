package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// GalleryRepository defines persistence for gallery items.
type GalleryRepository interface {
	Create(ctx context.Context, item *domain.GalleryItem) error
	List(ctx context.Context) ([]*domain.GalleryItem, error)
}

// InquiryRepository defines persistence for contact inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, inq *domain.Inquiry) error
	ListAll(ctx context.Context) ([]*domain.Inquiry, error)
}

// ServiceRepository exposes the bookable service catalog.
type ServiceRepository interface {
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

// ChatRepository defines persistence for assistant conversation transcripts.
type ChatRepository interface {
	Save(ctx context.Context, msg *domain.ChatMessage) error
	History(ctx context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error)
}
