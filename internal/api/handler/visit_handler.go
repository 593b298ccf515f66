package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawsitting/booking-system/internal/api/metrics"
	"github.com/pawsitting/booking-system/internal/core/domain"
	"github.com/pawsitting/booking-system/internal/core/ports"
)

// VisitHandler handles HTTP requests for report cards and the activity feed.
type VisitHandler struct {
	service ports.VisitService
}

func NewVisitHandler(service ports.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

// --- Request / Response types ---

type gpsPointRequest struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

type createReportCardRequest struct {
	BookingID        string            `json:"booking_id"`
	PetID            string            `json:"pet_id"`
	Mood             string            `json:"mood"`
	HealthStatus     string            `json:"health_status"`
	FeedingCompleted bool              `json:"feeding_completed"`
	WalkCompleted    bool              `json:"walk_completed"`
	WalkDuration     int               `json:"walk_duration"`
	WalkDistance     string            `json:"walk_distance"`
	GPSTrack         []gpsPointRequest `json:"gps_track"`
	Activities       string            `json:"activities"`
	Notes            string            `json:"notes"`
	PhotoURLs        []string          `json:"photo_urls"`
}

type createActivityItemRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	PetID     string `json:"pet_id"`
	Type      string `json:"type" validate:"required"`
	Content   string `json:"content"`
	MediaURL  string `json:"media_url"`
}

type reportCardListResponse struct {
	ReportCards []*domain.ReportCard `json:"report_cards"`
}

type activityFeedResponse struct {
	Items []*domain.ActivityFeedItem `json:"items"`
}

// CreateReportCard handles POST /v1/admin/report-cards.
//
// @Summary      Create a visit report card
// @Tags         visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReportCardRequest  true  "Report card"
// @Success      201   {object}  domain.ReportCard
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/admin/report-cards [post]
func (h *VisitHandler) CreateReportCard(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReportCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	track := make([]ports.GPSPointInput, 0, len(req.GPSTrack))
	for _, p := range req.GPSTrack {
		track = append(track, ports.GPSPointInput{Lat: p.Lat, Lng: p.Lng, Timestamp: p.Timestamp})
	}

	card, err := h.service.CreateReportCard(c.Request().Context(), ports.CreateReportCardInput{
		BookingID:        req.BookingID,
		PetID:            req.PetID,
		SitterID:         id.UserID,
		Mood:             req.Mood,
		HealthStatus:     req.HealthStatus,
		FeedingCompleted: req.FeedingCompleted,
		WalkCompleted:    req.WalkCompleted,
		WalkDuration:     req.WalkDuration,
		WalkDistance:     req.WalkDistance,
		GPSTrack:         track,
		Activities:       req.Activities,
		Notes:            req.Notes,
		PhotoURLs:        req.PhotoURLs,
	})
	if err != nil {
		return err
	}

	metrics.ReportCardsCreatedTotal.WithLabelValues(string(card.Mood)).Inc()
	return c.JSON(http.StatusCreated, card)
}

// ReportCardsByPet handles GET /v1/report-cards/pet/:petId.
//
// @Summary      List report cards for a pet
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        petId  path      string  true  "Pet id"
// @Success      200    {object}  reportCardListResponse
// @Failure      401    {object}  map[string]string
// @Router       /v1/report-cards/pet/{petId} [get]
func (h *VisitHandler) ReportCardsByPet(c echo.Context) error {
	cards, err := h.service.ReportCardsByPet(c.Request().Context(), c.Param("petId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reportCardListResponse{ReportCards: cards})
}

// ReportCardsByBooking handles GET /v1/report-cards/booking/:bookingId.
//
// @Summary      List report cards for a booking
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId  path      string  true  "Booking id"
// @Success      200        {object}  reportCardListResponse
// @Failure      401        {object}  map[string]string
// @Router       /v1/report-cards/booking/{bookingId} [get]
func (h *VisitHandler) ReportCardsByBooking(c echo.Context) error {
	cards, err := h.service.ReportCardsByBooking(c.Request().Context(), c.Param("bookingId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reportCardListResponse{ReportCards: cards})
}

// CreateActivityItem handles POST /v1/admin/activity-feed.
//
// @Summary      Append an activity feed event
// @Tags         visits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createActivityItemRequest  true  "Activity event"
// @Success      201   {object}  domain.ActivityFeedItem
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/activity-feed [post]
func (h *VisitHandler) CreateActivityItem(c echo.Context) error {
	var req createActivityItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateActivityItem(c.Request().Context(), ports.CreateActivityItemInput{
		BookingID: req.BookingID,
		PetID:     req.PetID,
		Type:      req.Type,
		Content:   req.Content,
		MediaURL:  req.MediaURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// ActivityByBooking handles GET /v1/activity-feed/:bookingId.
//
// @Summary      List activity feed events for a booking
// @Tags         visits
// @Produce      json
// @Security     BearerAuth
// @Param        bookingId  path      string  true  "Booking id"
// @Success      200        {object}  activityFeedResponse
// @Failure      401        {object}  map[string]string
// @Router       /v1/activity-feed/{bookingId} [get]
func (h *VisitHandler) ActivityByBooking(c echo.Context) error {
	items, err := h.service.ActivityByBooking(c.Request().Context(), c.Param("bookingId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activityFeedResponse{Items: items})
}
