// Package testutil holds in-memory stand-ins for the gorm repositories. They
// return gorm's sentinel errors so services see the same failures they would
// against postgres.
package testutil

import (
	"Food-Share-Backend/entities"
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]entities.User
	Err   error
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[string]entities.User{}}
}

func (r *UserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.users[user.Email] = *user
	return nil
}

func (r *UserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type ListingRepository struct {
	mu       sync.Mutex
	listings map[string]entities.FoodListing
	Err      error
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{listings: map[string]entities.FoodListing{}}
}

func (r *ListingRepository) CreateListing(_ context.Context, listing *entities.FoodListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.listings[listing.ID.String()] = *listing
	return nil
}

func (r *ListingRepository) GetListingByID(_ context.Context, id string) (*entities.FoodListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	listing, ok := r.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &listing, nil
}

func (r *ListingRepository) GetListings(_ context.Context) ([]*entities.FoodListing, error) {
	return r.filter(func(entities.FoodListing) bool { return true })
}

func (r *ListingRepository) GetListingsByUser(_ context.Context, userID string) ([]*entities.FoodListing, error) {
	return r.filter(func(l entities.FoodListing) bool {
		return l.UserID != nil && l.UserID.String() == userID
	})
}

func (r *ListingRepository) UpdateListing(_ context.Context, listing *entities.FoodListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.listings[listing.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.listings[listing.ID.String()] = *listing
	return nil
}

func (r *ListingRepository) DeleteListing(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.listings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.listings, id)
	return nil
}

func (r *ListingRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listings)
}

func (r *ListingRepository) filter(keep func(entities.FoodListing) bool) ([]*entities.FoodListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entities.FoodListing, 0, len(r.listings))
	for _, l := range r.listings {
		if keep(l) {
			l := l
			out = append(out, &l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type RequestRepository struct {
	mu       sync.Mutex
	requests []entities.FoodRequest
	Err      error
}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

func (r *RequestRepository) CreateRequest(_ context.Context, request *entities.FoodRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.requests = append(r.requests, *request)
	return nil
}

func (r *RequestRepository) GetRequestsByUser(_ context.Context, userID string) ([]*entities.FoodRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entities.FoodRequest, 0)
	for _, req := range r.requests {
		if req.UserID != nil && req.UserID.String() == userID {
			req := req
			out = append(out, &req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *RequestRepository) All() []entities.FoodRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.FoodRequest(nil), r.requests...)
}

type DonationRepository struct {
	mu        sync.Mutex
	donations []entities.FoodDonation
	Err       error
}

func NewDonationRepository(donations ...entities.FoodDonation) *DonationRepository {
	return &DonationRepository{donations: donations}
}

func (r *DonationRepository) GetDonationsByUser(_ context.Context, userID string) ([]*entities.FoodDonation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*entities.FoodDonation, 0)
	for _, d := range r.donations {
		if d.UserID.String() == userID {
			d := d
			out = append(out, &d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
