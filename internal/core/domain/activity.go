package domain

import "time"

// ActivityType classifies an activity feed event.
type ActivityType string

const (
	ActivityPhoto       ActivityType = "photo"
	ActivityVideo       ActivityType = "video"
	ActivityNote        ActivityType = "note"
	ActivityHealthCheck ActivityType = "health_check"
	ActivityFeeding     ActivityType = "feeding"
	ActivityWalkStart   ActivityType = "walk_start"
	ActivityWalkEnd     ActivityType = "walk_end"
)

// ValidActivityType reports whether v is one of the enumerated kinds.
func ValidActivityType(v string) bool {
	switch ActivityType(v) {
	case ActivityPhoto, ActivityVideo, ActivityNote, ActivityHealthCheck,
		ActivityFeeding, ActivityWalkStart, ActivityWalkEnd:
		return true
	}
	return false
}

// ActivityFeedItem is an append-only, timestamped event tied to a booking and
// pet ("pet cam" live updates).
type ActivityFeedItem struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	BookingID string       `json:"booking_id" bson:"booking_id"`
	PetID     string       `json:"pet_id" bson:"pet_id"`
	Type      ActivityType `json:"type" bson:"type"`
	Content   string       `json:"content,omitempty" bson:"content,omitempty"`
	MediaURL  string       `json:"media_url,omitempty" bson:"media_url,omitempty"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}
