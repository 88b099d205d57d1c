package request

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/entities"
	"Food-Share-Backend/pkg/listing"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateFoodRequestRequest, userID string) (*domain.FoodRequestResponse, error)
		GetMyRequests(ctx context.Context, userID string) ([]domain.FoodRequestResponse, error)
	}

	requestService struct {
		requestRepository RequestRepository
		listingRepository listing.ListingRepository
	}
)

func NewRequestService(requestRepository RequestRepository, listingRepository listing.ListingRepository) RequestService {
	return &requestService{
		requestRepository: requestRepository,
		listingRepository: listingRepository,
	}
}

// CreateRequest records interest in a listing. The listing's quantity is not
// checked or decremented, so several requests may together exceed it.
func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateFoodRequestRequest, userID string) (*domain.FoodRequestResponse, error) {
	foodItemID := strings.TrimSpace(req.FoodItemID)
	if foodItemID == "" {
		return nil, domain.ErrFoodItemIDRequired
	}

	quantity := float64(domain.DefaultRequestQuantity)
	if req.Quantity != nil {
		q := *req.Quantity
		if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
			return nil, domain.ErrInvalidRequestQuantity
		}
		quantity = q
	}

	listingID, err := uuid.Parse(foodItemID)
	if err != nil {
		return nil, domain.ErrFoodItemNotFound
	}
	if _, err := s.listingRepository.GetListingByID(ctx, listingID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	request := &entities.FoodRequest{
		ID:         uuid.New(),
		FoodItemID: listingID,
		Status:     domain.RequestStatusPending,
		Quantity:   quantity,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if userID != "" {
		// optional route: a caller id that is not a uuid is treated as anonymous
		if requester, err := uuid.Parse(userID); err == nil {
			request.UserID = &requester
		} else {
			slog.Debug("ignoring malformed caller id", "user_id", userID)
		}
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	res := ToFoodRequestResponse(request)
	return &res, nil
}

func (s *requestService) GetMyRequests(ctx context.Context, userID string) ([]domain.FoodRequestResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	requests, err := s.requestRepository.GetRequestsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToFoodRequestResponses(requests), nil
}

func ToFoodRequestResponse(request *entities.FoodRequest) domain.FoodRequestResponse {
	res := domain.FoodRequestResponse{
		ID:         request.ID.String(),
		FoodItemID: request.FoodItemID.String(),
		Status:     request.Status,
		Quantity:   request.Quantity,
		CreatedAt:  request.CreatedAt,
	}
	if request.UserID != nil {
		requester := request.UserID.String()
		res.UserID = &requester
	}
	return res
}

func ToFoodRequestResponses(requests []*entities.FoodRequest) []domain.FoodRequestResponse {
	result := make([]domain.FoodRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, ToFoodRequestResponse(r))
	}
	return result
}
