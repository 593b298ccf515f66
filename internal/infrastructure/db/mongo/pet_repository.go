package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

const collectionPets = "pets"

// PetRepository implements ports.PetRepository using MongoDB.
type PetRepository struct {
	col *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{col: db.Collection(collectionPets)}
}

func (r *PetRepository) Create(ctx context.Context, p *domain.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("%w: insert pet: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list pets: %v", domain.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var items []*domain.Pet
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode pets: %v", domain.ErrStoreUnavailable, err)
	}
	return items, nil
}
