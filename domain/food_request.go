package domain

import (
	"errors"
	"time"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"

	DefaultRequestQuantity = 1
)

var (
	MessageSuccessCreateRequest = "Food request created successfully"

	MessageFailedCreateRequest = "Failed to create food request"
	MessageFailedGetRequests   = "Failed to fetch food requests."
	MessageFoodItemIDRequired  = "Food item ID is required"
	MessageFoodItemNotFound    = "Food item not found"

	ErrFoodItemIDRequired     = errors.New("food item ID is required")
	ErrFoodItemNotFound       = errors.New("food item not found")
	ErrInvalidRequestQuantity = errors.New("requested quantity must be a positive number")
)

type (
	CreateFoodRequestRequest struct {
		FoodItemID string   `json:"foodItemId"`
		Quantity   *float64 `json:"quantity"`
	}

	FoodRequestResponse struct {
		ID         string    `json:"id"`
		FoodItemID string    `json:"foodItemId"`
		UserID     *string   `json:"userId,omitempty"`
		Status     string    `json:"status"`
		Quantity   float64   `json:"quantity"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	CreateFoodRequestResponse struct {
		Message string              `json:"message"`
		Request FoodRequestResponse `json:"request"`
	}
)
