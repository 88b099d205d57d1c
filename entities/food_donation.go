package entities

import (
	"github.com/google/uuid"
)

type FoodDonation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodItemID uuid.UUID `gorm:"type:uuid;not null" json:"food_item_id"`
	Status     string    `gorm:"size:20;not null;default:'available'" json:"status"` // available, reserved, completed

	Timestamp
}
