package listing

import (
	"Food-Share-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.FoodListing) error
		GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error)
		GetListings(ctx context.Context) ([]*entities.FoodListing, error)
		GetListingsByUser(ctx context.Context, userID string) ([]*entities.FoodListing, error)
		UpdateListing(ctx context.Context, listing *entities.FoodListing) error
		DeleteListing(ctx context.Context, id string) error
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.FoodListing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error) {
	var listing entities.FoodListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetListings(ctx context.Context) ([]*entities.FoodListing, error) {
	var listings []*entities.FoodListing
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) GetListingsByUser(ctx context.Context, userID string) ([]*entities.FoodListing, error) {
	var listings []*entities.FoodListing
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// UpdateListing writes every column but created_at. It never inserts: a row
// removed concurrently yields gorm.ErrRecordNotFound.
func (r *listingRepository) UpdateListing(ctx context.Context, listing *entities.FoodListing) error {
	res := r.db.WithContext(ctx).Model(listing).Select("*").Omit("id", "created_at").Updates(listing)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteListing returns gorm.ErrRecordNotFound when no row matched.
func (r *listingRepository) DeleteListing(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodListing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
