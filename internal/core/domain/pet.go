package domain

import "time"

// Pet belongs to exactly one owner. Species covers companion animals as well
// as the farm/ranch categories (horse, goat, peacock, livestock, exotic).
type Pet struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	OwnerID      string    `json:"owner_id" bson:"owner_id"`
	Name         string    `json:"name" bson:"name"`
	Species      string    `json:"species" bson:"species"`
	Breed        string    `json:"breed,omitempty" bson:"breed,omitempty"`
	Age          string    `json:"age,omitempty" bson:"age,omitempty"`
	Weight       string    `json:"weight,omitempty" bson:"weight,omitempty"`
	SpecialNeeds string    `json:"special_needs,omitempty" bson:"special_needs,omitempty"`
	Medications  string    `json:"medications,omitempty" bson:"medications,omitempty"`
	VetInfo      string    `json:"vet_info,omitempty" bson:"vet_info,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
