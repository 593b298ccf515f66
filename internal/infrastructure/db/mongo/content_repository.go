package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

const (
	collectionGallery   = "gallery_items"
	collectionInquiries = "inquiries"
	collectionServices  = "services"
	collectionChat      = "chat_messages"
)

// GalleryRepository implements ports.GalleryRepository using MongoDB.
type GalleryRepository struct {
	col *mongo.Collection
}

func NewGalleryRepository(db *mongo.Database) *GalleryRepository {
	return &GalleryRepository{col: db.Collection(collectionGallery)}
}

func (r *GalleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("%w: insert gallery item: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*domain.GalleryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list gallery: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var items []*domain.GalleryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode gallery: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}

// InquiryRepository implements ports.InquiryRepository using MongoDB.
type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *domain.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, inq); err != nil {
		return fmt.Errorf("%w: insert inquiry: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *InquiryRepository) ListAll(ctx context.Context) ([]*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list inquiries: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var items []*domain.Inquiry
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode inquiries: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}

// ServiceRepository implements ports.ServiceRepository using MongoDB.
type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("%w: list services: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var items []*domain.Service
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode services: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}

// ChatRepository implements ports.ChatRepository using MongoDB.
type ChatRepository struct {
	col *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{col: db.Collection(collectionChat)}
}

func (r *ChatRepository) Save(ctx context.Context, msg *domain.ChatMessage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("%w: insert chat message: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *ChatRepository) History(ctx context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: chat history: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var items []*domain.ChatMessage
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode chat history: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}
