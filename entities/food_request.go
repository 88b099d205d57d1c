package entities

import (
	"github.com/google/uuid"
)

type FoodRequest struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodItemID uuid.UUID  `gorm:"type:uuid;not null;index" json:"food_item_id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Status     string     `gorm:"size:20;not null;default:'pending'" json:"status"` // pending, approved, rejected
	Quantity   float64    `gorm:"not null;default:1" json:"quantity"`

	Timestamp
}
