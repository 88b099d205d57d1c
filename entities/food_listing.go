package entities

import (
	"github.com/google/uuid"
)

// FoodListing holds a weak reference to its owner; there is no foreign key so
// listings survive independently of users and requests.
type FoodListing struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Category    string     `gorm:"not null" json:"category"`
	Quantity    float64    `gorm:"not null" json:"quantity"`
	Location    string     `gorm:"not null" json:"location"`
	Expiry      string     `gorm:"not null" json:"expiry"` // free-form, never parsed
	ImageURL    string     `json:"image_url,omitempty"`

	Timestamp
}
