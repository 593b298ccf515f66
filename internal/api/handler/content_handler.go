package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// ContentHandler handles HTTP requests for gallery, inquiries, the service
// catalog, and pet profiles.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// --- Request / Response types ---

type createGalleryItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"required"`
	Category    string `json:"category" validate:"required"`
	AnimalName  string `json:"animal_name"`
	Featured    bool   `json:"featured"`
}

type createInquiryRequest struct {
	Name       string `json:"name" validate:"required,min=1"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	AnimalType string `json:"animal_type"`
	Message    string `json:"message" validate:"required,min=1"`
}

type createPetRequest struct {
	Name         string `json:"name" validate:"required"`
	Species      string `json:"species" validate:"required"`
	Breed        string `json:"breed"`
	Age          string `json:"age"`
	Weight       string `json:"weight"`
	SpecialNeeds string `json:"special_needs"`
	Medications  string `json:"medications"`
	VetInfo      string `json:"vet_info"`
	PhotoURL     string `json:"photo_url"`
	Notes        string `json:"notes"`
}

type galleryListResponse struct {
	Items []*domain.GalleryItem `json:"items"`
}

type inquiryListResponse struct {
	Inquiries []*domain.Inquiry `json:"inquiries"`
}

type serviceListResponse struct {
	Services []*domain.Service `json:"services"`
}

type petListResponse struct {
	Pets []*domain.Pet `json:"pets"`
}

// ListGallery handles GET /v1/gallery.
//
// @Summary      List showcase photos
// @Tags         content
// @Produce      json
// @Success      200  {object}  galleryListResponse
// @Router       /v1/gallery [get]
func (h *ContentHandler) ListGallery(c echo.Context) error {
	items, err := h.service.GalleryItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleryListResponse{Items: items})
}

// CreateGalleryItem handles POST /v1/admin/gallery.
//
// @Summary      Add a showcase photo
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGalleryItemRequest  true  "Gallery item"
// @Success      201   {object}  domain.GalleryItem
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/gallery [post]
func (h *ContentHandler) CreateGalleryItem(c echo.Context) error {
	var req createGalleryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateGalleryItem(c.Request().Context(), ports.CreateGalleryItemInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		AnimalName:  req.AnimalName,
		Featured:    req.Featured,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// CreateInquiry handles POST /v1/inquiries.
//
// @Summary      Submit a contact inquiry
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      createInquiryRequest  true  "Inquiry"
// @Success      201   {object}  domain.Inquiry
// @Failure      400   {object}  map[string]string
// @Router       /v1/inquiries [post]
func (h *ContentHandler) CreateInquiry(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inq, err := h.service.CreateInquiry(c.Request().Context(), ports.CreateInquiryInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		City:       req.City,
		AnimalType: req.AnimalType,
		Message:    req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, inq)
}

// ListInquiries handles GET /v1/admin/inquiries.
//
// @Summary      List contact inquiries
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  inquiryListResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/inquiries [get]
func (h *ContentHandler) ListInquiries(c echo.Context) error {
	inquiries, err := h.service.Inquiries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inquiryListResponse{Inquiries: inquiries})
}

// ListServices handles GET /v1/services.
//
// @Summary      List active service offerings
// @Tags         content
// @Produce      json
// @Success      200  {object}  serviceListResponse
// @Router       /v1/services [get]
func (h *ContentHandler) ListServices(c echo.Context) error {
	services, err := h.service.ActiveServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceListResponse{Services: services})
}

// CreatePet handles POST /v1/pets.
//
// @Summary      Register a pet
// @Tags         pets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPetRequest  true  "Pet profile"
// @Success      201   {object}  domain.Pet
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/pets [post]
func (h *ContentHandler) CreatePet(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pet, err := h.service.CreatePet(c.Request().Context(), ports.CreatePetInput{
		OwnerID:      id.UserID,
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		Age:          req.Age,
		Weight:       req.Weight,
		SpecialNeeds: req.SpecialNeeds,
		Medications:  req.Medications,
		VetInfo:      req.VetInfo,
		PhotoURL:     req.PhotoURL,
		Notes:        req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, pet)
}

// ListPets handles GET /v1/pets, returning the caller's own pets.
//
// @Summary      List the caller's pets
// @Tags         pets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  petListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/pets [get]
func (h *ContentHandler) ListPets(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	pets, err := h.service.PetsByOwner(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, petListResponse{Pets: pets})
}
