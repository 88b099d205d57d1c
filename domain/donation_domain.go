package domain

import (
	"time"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusReserved  = "reserved"
	DonationStatusCompleted = "completed"
)

var (
	MessageFailedGetDonations = "Failed to fetch food donations."
)

type (
	FoodDonationResponse struct {
		ID         string    `json:"id"`
		UserID     string    `json:"userId"`
		FoodItemID string    `json:"foodItemId"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"createdAt"`
	}
)
