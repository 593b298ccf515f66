package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// validTransitions defines the allowed state machine edges. A confirmed
// booking may jump straight to completed (short visits are often closed out
// in one step); completed and cancelled are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingInProgress, BookingCompleted, BookingCancelled},
	BookingInProgress: {BookingCompleted},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether v is one of the enumerated statuses.
func ValidBookingStatus(v string) bool {
	switch BookingStatus(v) {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks the payment state of a booking, independent of its
// lifecycle status.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a scheduled service engagement between a client and the business.
type Booking struct {
	ID                  string        `json:"id" bson:"_id,omitempty"`
	ClientID            string        `json:"client_id" bson:"client_id"`
	PetID               string        `json:"pet_id,omitempty" bson:"pet_id,omitempty"`
	PetName             string        `json:"pet_name,omitempty" bson:"pet_name,omitempty"`
	AnimalType          string        `json:"animal_type" bson:"animal_type"`
	Tier                string        `json:"tier" bson:"tier"`
	Status              BookingStatus `json:"status" bson:"status"`
	PaymentStatus       PaymentStatus `json:"payment_status" bson:"payment_status"`
	ScheduledDate       time.Time     `json:"scheduled_date" bson:"scheduled_date"`
	EndDate             *time.Time    `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Address             string        `json:"address" bson:"address"`
	City                string        `json:"city" bson:"city"`
	SpecialInstructions string        `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`
	TotalPrice          int64         `json:"total_price,omitempty" bson:"total_price,omitempty"` // minor currency units
	StripePaymentID     string        `json:"stripe_payment_id,omitempty" bson:"stripe_payment_id,omitempty"`
	CreatedAt           time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" bson:"updated_at"`
}
