package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

type stubGalleryRepo struct {
	createErr error
	listErr   error
	created   []*domain.GalleryItem
}

func (r *stubGalleryRepo) Create(_ context.Context, item *domain.GalleryItem) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, item)
	return nil
}

func (r *stubGalleryRepo) List(_ context.Context) ([]*domain.GalleryItem, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.created, nil
}

type stubInquiryRepo struct {
	createErr error
	listErr   error
	created   []*domain.Inquiry
}

func (r *stubInquiryRepo) Create(_ context.Context, inq *domain.Inquiry) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, inq)
	return nil
}

func (r *stubInquiryRepo) ListAll(_ context.Context) ([]*domain.Inquiry, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.created, nil
}

type stubServiceRepo struct {
	listErr error
	items   []*domain.Service
}

func (r *stubServiceRepo) ListActive(_ context.Context) ([]*domain.Service, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}

type stubPetRepo struct {
	createErr error
	listErr   error
	created   []*domain.Pet
}

func (r *stubPetRepo) Create(_ context.Context, p *domain.Pet) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, p)
	return nil
}

func (r *stubPetRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Pet, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Pet
	for _, p := range r.created {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newContentSvc(gallery *stubGalleryRepo, inquiries *stubInquiryRepo, services *stubServiceRepo, pets *stubPetRepo) *ContentService {
	return NewContentService(gallery, inquiries, services, pets, zerolog.Nop())
}

func TestCreateGalleryItem_RequiresImageAndCategory(t *testing.T) {
	svc := newContentSvc(&stubGalleryRepo{}, &stubInquiryRepo{}, &stubServiceRepo{}, &stubPetRepo{})

	_, err := svc.CreateGalleryItem(context.Background(), ports.CreateGalleryItemInput{Title: "Biscuit"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateGalleryItem_Persisted(t *testing.T) {
	gallery := &stubGalleryRepo{}
	svc := newContentSvc(gallery, &stubInquiryRepo{}, &stubServiceRepo{}, &stubPetRepo{})

	item, err := svc.CreateGalleryItem(context.Background(), ports.CreateGalleryItemInput{
		ImageURL: "https://cdn.example.com/biscuit.jpg",
		Category: "farm",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == "" || item.CreatedAt.IsZero() {
		t.Fatalf("id and creation time should be stamped: %+v", item)
	}
	if len(gallery.created) != 1 {
		t.Fatalf("item not persisted")
	}
}

func TestCreateInquiry_StartsNew(t *testing.T) {
	inquiries := &stubInquiryRepo{}
	svc := newContentSvc(&stubGalleryRepo{}, inquiries, &stubServiceRepo{}, &stubPetRepo{})

	inq, err := svc.CreateInquiry(context.Background(), ports.CreateInquiryInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Do you board goats?",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inq.Status != domain.InquiryNew {
		t.Fatalf("expected status new, got %s", inq.Status)
	}
	if len(inquiries.created) != 1 {
		t.Fatalf("inquiry not persisted")
	}
}

func TestCreateInquiry_MissingFieldsRejected(t *testing.T) {
	svc := newContentSvc(&stubGalleryRepo{}, &stubInquiryRepo{}, &stubServiceRepo{}, &stubPetRepo{})

	_, err := svc.CreateInquiry(context.Background(), ports.CreateInquiryInput{Name: "Alice"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateInquiry_StoreFailureIsFatal(t *testing.T) {
	inquiries := &stubInquiryRepo{createErr: domain.ErrStoreUnavailable}
	svc := newContentSvc(&stubGalleryRepo{}, inquiries, &stubServiceRepo{}, &stubPetRepo{})

	_, err := svc.CreateInquiry(context.Background(), ports.CreateInquiryInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hi",
	})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestGalleryItems_DegradesToEmpty(t *testing.T) {
	gallery := &stubGalleryRepo{listErr: domain.ErrStoreUnavailable}
	svc := newContentSvc(gallery, &stubInquiryRepo{}, &stubServiceRepo{}, &stubPetRepo{})

	items, err := svc.GalleryItems(context.Background())
	if err != nil {
		t.Fatalf("read should degrade, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestActiveServices_DegradesToEmpty(t *testing.T) {
	services := &stubServiceRepo{listErr: domain.ErrStoreUnavailable}
	svc := newContentSvc(&stubGalleryRepo{}, &stubInquiryRepo{}, services, &stubPetRepo{})

	items, err := svc.ActiveServices(context.Background())
	if err != nil {
		t.Fatalf("read should degrade, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestCreatePet_RequiresNameAndSpecies(t *testing.T) {
	svc := newContentSvc(&stubGalleryRepo{}, &stubInquiryRepo{}, &stubServiceRepo{}, &stubPetRepo{})

	_, err := svc.CreatePet(context.Background(), ports.CreatePetInput{OwnerID: "usr_1", Name: "Biscuit"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreatePet_OwnerScoped(t *testing.T) {
	pets := &stubPetRepo{}
	svc := newContentSvc(&stubGalleryRepo{}, &stubInquiryRepo{}, &stubServiceRepo{}, pets)

	if _, err := svc.CreatePet(context.Background(), ports.CreatePetInput{OwnerID: "usr_1", Name: "Biscuit", Species: "horse"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreatePet(context.Background(), ports.CreatePetInput{OwnerID: "usr_2", Name: "Clover", Species: "goat"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.PetsByOwner(context.Background(), "usr_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].Name != "Biscuit" {
		t.Fatalf("listing must be scoped to the owner: %+v", mine)
	}
}

func TestPetsByOwner_DegradesToEmpty(t *testing.T) {
	pets := &stubPetRepo{listErr: domain.ErrStoreUnavailable}
	svc := newContentSvc(&stubGalleryRepo{}, &stubInquiryRepo{}, &stubServiceRepo{}, pets)

	items, err := svc.PetsByOwner(context.Background(), "usr_1")
	if err != nil {
		t.Fatalf("read should degrade, got %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
