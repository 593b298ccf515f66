package domain

import "time"

// GalleryItem is a public showcase photo.
type GalleryItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title,omitempty" bson:"title,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Category    string    `json:"category" bson:"category"`
	AnimalName  string    `json:"animal_name,omitempty" bson:"animal_name,omitempty"`
	Featured    bool      `json:"featured" bson:"featured"`
	SortOrder   int       `json:"sort_order" bson:"sort_order"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// InquiryStatus tracks follow-up on a contact inquiry.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryResponded InquiryStatus = "responded"
	InquiryClosed    InquiryStatus = "closed"
)

// Inquiry is a contact-form submission from the public site.
type Inquiry struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	Name       string        `json:"name" bson:"name"`
	Email      string        `json:"email" bson:"email"`
	Phone      string        `json:"phone,omitempty" bson:"phone,omitempty"`
	City       string        `json:"city,omitempty" bson:"city,omitempty"`
	AnimalType string        `json:"animal_type,omitempty" bson:"animal_type,omitempty"`
	Message    string        `json:"message" bson:"message"`
	Status     InquiryStatus `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
}

// Service is a bookable service offering. Rows are maintained out of band;
// the API only lists active ones.
type Service struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Category      string    `json:"category" bson:"category"`
	AnimalTypes   []string  `json:"animal_types,omitempty" bson:"animal_types,omitempty"`
	Tier          string    `json:"tier" bson:"tier"`
	PricePerVisit int64     `json:"price_per_visit,omitempty" bson:"price_per_visit,omitempty"` // minor units
	PricePerHour  int64     `json:"price_per_hour,omitempty" bson:"price_per_hour,omitempty"`
	PricePerDay   int64     `json:"price_per_day,omitempty" bson:"price_per_day,omitempty"`
	Duration      string    `json:"duration,omitempty" bson:"duration,omitempty"`
	IsActive      bool      `json:"is_active" bson:"is_active"`
	IconName      string    `json:"icon_name,omitempty" bson:"icon_name,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// ChatMessage is one turn of an assistant conversation, keyed by session.
type ChatMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SessionID string    `json:"session_id" bson:"session_id"`
	UserID    string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Role      string    `json:"role" bson:"role"` // "user" or "assistant"
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
