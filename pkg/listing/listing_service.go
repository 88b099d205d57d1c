package listing

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/entities"
	"Food-Share-Backend/internal/utils/cache"
	"Food-Share-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const imageFolder = "food-listings"

type (
	ListingService interface {
		GetListings(ctx context.Context) ([]domain.ListingResponse, error)
		GetMyListings(ctx context.Context, userID string) ([]domain.ListingResponse, error)
		GetListingByID(ctx context.Context, id string) (*domain.ListingResponse, error)
		CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (*domain.ListingResponse, error)
		UpdateListing(ctx context.Context, id string, req domain.UpdateListingRequest) (*domain.ListingResponse, error)
		DeleteListing(ctx context.Context, id string) error
		UploadListingImage(ctx context.Context, req domain.UploadListingImageRequest) (*domain.ListingResponse, error)
	}

	listingService struct {
		listingRepository ListingRepository
		cache             cache.ListingCache
		s3                storage.AwsS3
	}
)

// NewListingService accepts a nil s3 when image storage is not configured.
func NewListingService(listingRepository ListingRepository, listingCache cache.ListingCache, s3 storage.AwsS3) ListingService {
	if listingCache == nil {
		listingCache = cache.NewNoopListingCache()
	}
	return &listingService{
		listingRepository: listingRepository,
		cache:             listingCache,
		s3:                s3,
	}
}

func (s *listingService) GetListings(ctx context.Context) ([]domain.ListingResponse, error) {
	cached, generation, ok := s.cache.GetAll(ctx)
	if ok {
		return cached, nil
	}

	listings, err := s.listingRepository.GetListings(ctx)
	if err != nil {
		return nil, err
	}

	result := ToListingResponses(listings)
	s.cache.SetAll(ctx, generation, result)
	return result, nil
}

func (s *listingService) GetMyListings(ctx context.Context, userID string) ([]domain.ListingResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	listings, err := s.listingRepository.GetListingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToListingResponses(listings), nil
}

func (s *listingService) GetListingByID(ctx context.Context, id string) (*domain.ListingResponse, error) {
	listing, err := s.getListing(ctx, id)
	if err != nil {
		return nil, err
	}
	res := ToListingResponse(listing)
	return &res, nil
}

func (s *listingService) CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (*domain.ListingResponse, error) {
	if req.Quantity == nil || !validQuantity(*req.Quantity) || *req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now()
	listing := &entities.FoodListing{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    *req.Quantity,
		Location:    req.Location,
		Expiry:      req.Expiry,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if owner, ok := parseOwner(userID); ok {
		listing.UserID = &owner
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	res := ToListingResponse(listing)
	return &res, nil
}

func (s *listingService) UpdateListing(ctx context.Context, id string, req domain.UpdateListingRequest) (*domain.ListingResponse, error) {
	listing, err := s.getListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if !validQuantity(*req.Quantity) {
			return nil, domain.ErrInvalidQuantity
		}
		if *req.Quantity < 0 {
			return nil, domain.ErrNegativeQuantity
		}
		listing.Quantity = *req.Quantity
	}
	if req.Title != nil {
		listing.Title = *req.Title
	}
	if req.Description != nil {
		listing.Description = *req.Description
	}
	if req.Category != nil {
		listing.Category = *req.Category
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.Expiry != nil {
		listing.Expiry = *req.Expiry
	}
	listing.UpdatedAt = time.Now()

	if err := s.listingRepository.UpdateListing(ctx, listing); err != nil {
		return nil, mapNotFound(err)
	}
	s.cache.Invalidate(ctx)

	res := ToListingResponse(listing)
	return &res, nil
}

// DeleteListing leaves requests that reference the listing in place.
func (s *listingService) DeleteListing(ctx context.Context, id string) error {
	listing, err := s.getListing(ctx, id)
	if err != nil {
		return err
	}

	if err := s.listingRepository.DeleteListing(ctx, listing.ID.String()); err != nil {
		return mapNotFound(err)
	}
	s.cache.Invalidate(ctx)

	s.removeImage(ctx, listing.ImageURL)
	return nil
}

func (s *listingService) UploadListingImage(ctx context.Context, req domain.UploadListingImageRequest) (*domain.ListingResponse, error) {
	if s.s3 == nil {
		return nil, domain.ErrImageStorageDisabled
	}

	listing, err := s.getListing(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("%s-%s", listing.ID, uuid.NewString())
	objectKey, err := s.s3.UploadFile(ctx, fileName, req.Image, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) || errors.Is(err, storage.ErrEmptyFile) {
			return nil, domain.ErrInvalidImageFormat
		}
		return nil, err
	}

	previous := listing.ImageURL
	listing.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	listing.UpdatedAt = time.Now()

	if err := s.listingRepository.UpdateListing(ctx, listing); err != nil {
		s.removeImage(ctx, listing.ImageURL)
		return nil, mapNotFound(err)
	}
	s.cache.Invalidate(ctx)

	s.removeImage(ctx, previous)

	res := ToListingResponse(listing)
	return &res, nil
}

func (s *listingService) getListing(ctx context.Context, id string) (*entities.FoodListing, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrListingNotFound
	}

	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return listing, nil
}

func (s *listingService) removeImage(ctx context.Context, link string) {
	if s.s3 == nil || link == "" {
		return
	}
	key := s.s3.GetObjectKeyFromLink(link)
	if key == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, key); err != nil {
		slog.Warn("failed to delete listing image", "key", key, "error", err)
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrListingNotFound
	}
	return err
}

func validQuantity(q float64) bool {
	return !math.IsNaN(q) && !math.IsInf(q, 0)
}

func ToListingResponse(listing *entities.FoodListing) domain.ListingResponse {
	res := domain.ListingResponse{
		ID:          listing.ID.String(),
		Title:       listing.Title,
		Description: listing.Description,
		Category:    listing.Category,
		Quantity:    listing.Quantity,
		Location:    listing.Location,
		Expiry:      listing.Expiry,
		ImageURL:    listing.ImageURL,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
	if listing.UserID != nil {
		owner := listing.UserID.String()
		res.UserID = &owner
	}
	return res
}

// ToListingResponses never returns nil.
func ToListingResponses(listings []*entities.FoodListing) []domain.ListingResponse {
	result := make([]domain.ListingResponse, 0, len(listings))
	for _, l := range listings {
		result = append(result, ToListingResponse(l))
	}
	return result
}

// parseOwner drops an identity that is not a uuid, so the listing is stored
// without an owner as for an anonymous caller.
func parseOwner(userID string) (uuid.UUID, bool) {
	if userID == "" {
		return uuid.Nil, false
	}
	owner, err := uuid.Parse(userID)
	if err != nil {
		slog.Debug("ignoring malformed caller id", "user_id", userID)
		return uuid.Nil, false
	}
	return owner, true
}
