package ports

import (
	"context"

	"github.com/pawsitting/booking-system/internal/core/domain"
)

// CreateGalleryItemInput carries a new showcase photo.
type CreateGalleryItemInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	AnimalName  string
	Featured    bool
}

// CreateInquiryInput carries a public contact-form submission.
type CreateInquiryInput struct {
	Name       string
	Email      string
	Phone      string
	City       string
	AnimalType string
	Message    string
}

// CreatePetInput carries a new pet profile. OwnerID comes from the
// authenticated identity.
type CreatePetInput struct {
	OwnerID      string
	Name         string
	Species      string
	Breed        string
	Age          string
	Weight       string
	SpecialNeeds string
	Medications  string
	VetInfo      string
	PhotoURL     string
	Notes        string
}

// ContentService covers the simple record entities that share the store and
// authorization discipline but have no lifecycle of their own.
type ContentService interface {
	GalleryItems(ctx context.Context) ([]*domain.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, input CreateGalleryItemInput) (*domain.GalleryItem, error)
	CreateInquiry(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error)
	Inquiries(ctx context.Context) ([]*domain.Inquiry, error)
	ActiveServices(ctx context.Context) ([]*domain.Service, error)
	CreatePet(ctx context.Context, input CreatePetInput) (*domain.Pet, error)
	// PetsByOwner lists the caller's pets, newest first. Degrades to empty.
	PetsByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error)
}
