package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp;not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}
