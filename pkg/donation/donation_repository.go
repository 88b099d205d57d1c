package donation

import (
	"Food-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		GetDonationsByUser(ctx context.Context, userID string) ([]*entities.FoodDonation, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) GetDonationsByUser(ctx context.Context, userID string) ([]*entities.FoodDonation, error) {
	var donations []*entities.FoodDonation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
