package donation

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/entities"
	"context"

	"github.com/google/uuid"
)

type (
	// DonationService is read-only. FoodDonation records are not derived from
	// listings and have no create or transition operation here.
	DonationService interface {
		GetMyDonations(ctx context.Context, userID string) ([]domain.FoodDonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
	}
)

func NewDonationService(donationRepository DonationRepository) DonationService {
	return &donationService{donationRepository: donationRepository}
}

func (s *donationService) GetMyDonations(ctx context.Context, userID string) ([]domain.FoodDonationResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	donations, err := s.donationRepository.GetDonationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FoodDonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, toFoodDonationResponse(d))
	}
	return result, nil
}

func toFoodDonationResponse(d *entities.FoodDonation) domain.FoodDonationResponse {
	return domain.FoodDonationResponse{
		ID:         d.ID.String(),
		UserID:     d.UserID.String(),
		FoodItemID: d.FoodItemID.String(),
		Status:     d.Status,
		CreatedAt:  d.CreatedAt,
	}
}
