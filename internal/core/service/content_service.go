package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// ContentService covers gallery items, inquiries, the service catalog, and
// pet profiles.
type ContentService struct {
	gallery   ports.GalleryRepository
	inquiries ports.InquiryRepository
	services  ports.ServiceRepository
	pets      ports.PetRepository
	logger    zerolog.Logger
}

func NewContentService(
	gallery ports.GalleryRepository,
	inquiries ports.InquiryRepository,
	services ports.ServiceRepository,
	pets ports.PetRepository,
	logger zerolog.Logger,
) *ContentService {
	return &ContentService{gallery: gallery, inquiries: inquiries, services: services, pets: pets, logger: logger}
}

// GalleryItems lists showcase photos, newest first. Degrades to empty.
func (s *ContentService) GalleryItems(ctx context.Context) ([]*domain.GalleryItem, error) {
	items, err := s.gallery.List(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("gallery listing degraded to empty")
		return []*domain.GalleryItem{}, nil
	}
	return items, nil
}

// CreateGalleryItem stores a new showcase photo.
func (s *ContentService) CreateGalleryItem(ctx context.Context, input ports.CreateGalleryItemInput) (*domain.GalleryItem, error) {
	if input.ImageURL == "" || input.Category == "" {
		return nil, fmt.Errorf("%w: image_url and category are required", domain.ErrValidation)
	}

	item := &domain.GalleryItem{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		AnimalName:  input.AnimalName,
		Featured:    input.Featured,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.gallery.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Msg("failed to create gallery item")
		return nil, err
	}
	return item, nil
}

// CreateInquiry stores a public contact-form submission in state "new".
func (s *ContentService) CreateInquiry(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", domain.ErrValidation)
	}

	inq := &domain.Inquiry{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		City:       input.City,
		AnimalType: input.AnimalType,
		Message:    input.Message,
		Status:     domain.InquiryNew,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.inquiries.Create(ctx, inq); err != nil {
		s.logger.Error().Err(err).Msg("failed to create inquiry")
		return nil, err
	}
	return inq, nil
}

// Inquiries lists all submissions, newest first. Degrades to empty.
func (s *ContentService) Inquiries(ctx context.Context) ([]*domain.Inquiry, error) {
	items, err := s.inquiries.ListAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("inquiry listing degraded to empty")
		return []*domain.Inquiry{}, nil
	}
	return items, nil
}

// ActiveServices lists the bookable catalog. Degrades to empty.
func (s *ContentService) ActiveServices(ctx context.Context) ([]*domain.Service, error) {
	items, err := s.services.ListActive(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("service catalog listing degraded to empty")
		return []*domain.Service{}, nil
	}
	return items, nil
}

// CreatePet stores a new pet profile for the owner.
func (s *ContentService) CreatePet(ctx context.Context, input ports.CreatePetInput) (*domain.Pet, error) {
	if input.Name == "" || input.Species == "" {
		return nil, fmt.Errorf("%w: name and species are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	pet := &domain.Pet{
		ID:           uuid.NewString(),
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Species:      input.Species,
		Breed:        input.Breed,
		Age:          input.Age,
		Weight:       input.Weight,
		SpecialNeeds: input.SpecialNeeds,
		Medications:  input.Medications,
		VetInfo:      input.VetInfo,
		PhotoURL:     input.PhotoURL,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		s.logger.Error().Err(err).Msg("failed to create pet")
		return nil, err
	}
	return pet, nil
}

// PetsByOwner lists the caller's pets, newest first. Degrades to empty.
func (s *ContentService) PetsByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	items, err := s.pets.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Warn().Err(err).Msg("pet listing degraded to empty")
		return []*domain.Pet{}, nil
	}
	return items, nil
}
