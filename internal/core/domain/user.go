package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an authenticated actor. Accounts are created on first login by
// upserting the external identity (OpenID) and refreshed on every login.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	OpenID       string    `json:"open_id" bson:"open_id"`
	Name         string    `json:"name,omitempty" bson:"name,omitempty"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	LoginMethod  string    `json:"login_method,omitempty" bson:"login_method,omitempty"`
	Role         string    `json:"role" bson:"role"`
	Address      string    `json:"address,omitempty" bson:"address,omitempty"`
	City         string    `json:"city,omitempty" bson:"city,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in" bson:"last_signed_in"`
}
