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
	collectionReportCards  = "report_cards"
	collectionActivityFeed = "activity_feed"
)

// ReportCardRepository implements ports.ReportCardRepository using MongoDB.
// Cards are insert-only; no update or delete exists.
type ReportCardRepository struct {
	col *mongo.Collection
}

func NewReportCardRepository(db *mongo.Database) *ReportCardRepository {
	return &ReportCardRepository{col: db.Collection(collectionReportCards)}
}

func (r *ReportCardRepository) Create(ctx context.Context, rc *domain.ReportCard) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, rc); err != nil {
		return fmt.Errorf("%w: insert report card: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *ReportCardRepository) ListByPet(ctx context.Context, petID string) ([]*domain.ReportCard, error) {
	return r.list(ctx, bson.M{"pet_id": petID})
}

func (r *ReportCardRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.ReportCard, error) {
	return r.list(ctx, bson.M{"booking_id": bookingID})
}

func (r *ReportCardRepository) list(ctx context.Context, filter bson.M) ([]*domain.ReportCard, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list report cards: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var items []*domain.ReportCard
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode report cards: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}

// ActivityFeedRepository implements ports.ActivityFeedRepository using MongoDB.
type ActivityFeedRepository struct {
	col *mongo.Collection
}

func NewActivityFeedRepository(db *mongo.Database) *ActivityFeedRepository {
	return &ActivityFeedRepository{col: db.Collection(collectionActivityFeed)}
}

func (r *ActivityFeedRepository) Create(ctx context.Context, item *domain.ActivityFeedItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("%w: insert activity item: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *ActivityFeedRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.ActivityFeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list activity feed: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var items []*domain.ActivityFeedItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode activity feed: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}
