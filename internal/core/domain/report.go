package domain

import "time"

// Mood is the sitter's read of the animal's mood during a visit.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodCalm      Mood = "calm"
	MoodPlayful   Mood = "playful"
	MoodAnxious   Mood = "anxious"
	MoodTired     Mood = "tired"
	MoodEnergetic Mood = "energetic"
)

// ValidMood reports whether v is one of the enumerated moods.
func ValidMood(v string) bool {
	switch Mood(v) {
	case MoodHappy, MoodCalm, MoodPlayful, MoodAnxious, MoodTired, MoodEnergetic:
		return true
	}
	return false
}

// HealthStatus is the sitter's assessment of the animal's condition.
type HealthStatus string

const (
	HealthExcellent      HealthStatus = "excellent"
	HealthGood           HealthStatus = "good"
	HealthFair           HealthStatus = "fair"
	HealthNeedsAttention HealthStatus = "needs_attention"
)

// ValidHealthStatus reports whether v is one of the enumerated statuses.
func ValidHealthStatus(v string) bool {
	switch HealthStatus(v) {
	case HealthExcellent, HealthGood, HealthFair, HealthNeedsAttention:
		return true
	}
	return false
}

// GPSPoint is a single sample of a walk trace.
type GPSPoint struct {
	Lat       float64   `json:"lat" bson:"lat"`
	Lng       float64   `json:"lng" bson:"lng"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ReportCard is an admin-authored, per-visit summary of an animal's condition
// and activities. Immutable once created; a pet accumulates many over time.
type ReportCard struct {
	ID               string       `json:"id" bson:"_id,omitempty"`
	BookingID        string       `json:"booking_id" bson:"booking_id"`
	PetID            string       `json:"pet_id" bson:"pet_id"`
	SitterID         string       `json:"sitter_id" bson:"sitter_id"`
	Mood             Mood         `json:"mood" bson:"mood"`
	HealthStatus     HealthStatus `json:"health_status" bson:"health_status"`
	FeedingCompleted bool         `json:"feeding_completed" bson:"feeding_completed"`
	WalkCompleted    bool         `json:"walk_completed" bson:"walk_completed"`
	WalkDuration     int          `json:"walk_duration,omitempty" bson:"walk_duration,omitempty"` // minutes
	WalkDistance     string       `json:"walk_distance,omitempty" bson:"walk_distance,omitempty"` // miles
	GPSTrack         []GPSPoint   `json:"gps_track,omitempty" bson:"gps_track,omitempty"`
	Activities       string       `json:"activities" bson:"activities"`
	Notes            string       `json:"notes,omitempty" bson:"notes,omitempty"`
	AIInsights       string       `json:"ai_insights" bson:"ai_insights"` // may be empty, never absent
	PhotoURLs        []string     `json:"photo_urls,omitempty" bson:"photo_urls,omitempty"`
	CreatedAt        time.Time    `json:"created_at" bson:"created_at"`
}
