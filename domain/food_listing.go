package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessDeleteListing = "Food listing deleted successfully"

	MessageFailedGetListings   = "Failed to fetch food listings"
	MessageFailedCreateListing = "All fields are required."
	MessageFailedSaveListing   = "Failed to create food listing."
	MessageFailedUpdateListing = "Failed to update food listing"
	MessageFailedDeleteListing = "Failed to delete food listing"
	MessageFailedUploadImage   = "Failed to upload food listing image"
	MessageListingNotFound     = "Food listing not found"
	MessageInvalidQuantity     = "Quantity must be a valid positive number."

	ErrListingNotFound      = errors.New("food listing not found")
	ErrInvalidQuantity      = errors.New("quantity must be a valid positive number")
	ErrNegativeQuantity     = errors.New("quantity cannot be negative")
	ErrInvalidImageFormat   = errors.New("invalid image format")
	ErrImageStorageDisabled = errors.New("image storage is not configured")
	ErrImageRequired        = errors.New("image file is required")
)

type (
	CreateListingRequest struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description" validate:"required"`
		Category    string   `json:"category" validate:"required"`
		Quantity    *float64 `json:"quantity" validate:"required"`
		Location    string   `json:"location" validate:"required"`
		Expiry      string   `json:"expiry" validate:"required"`
	}

	// UpdateListingRequest is a partial update: nil fields are left untouched.
	UpdateListingRequest struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
		Quantity    *float64 `json:"quantity"`
		Location    *string  `json:"location"`
		Expiry      *string  `json:"expiry"`
	}

	UploadListingImageRequest struct {
		ListingID string                `json:"id" validate:"required"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ListingResponse struct {
		ID          string    `json:"id"`
		UserID      *string   `json:"userId,omitempty"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Category    string    `json:"category"`
		Quantity    float64   `json:"quantity"`
		Location    string    `json:"location"`
		Expiry      string    `json:"expiry"`
		ImageURL    string    `json:"imageUrl,omitempty"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
)
