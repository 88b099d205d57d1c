package dashboard

import (
	"Food-Share-Backend/domain"
	"Food-Share-Backend/pkg/listing"
	"Food-Share-Backend/pkg/request"
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type (
	DashboardService interface {
		GetSummary(ctx context.Context, userID string) (*domain.DashboardResponse, error)
	}

	dashboardService struct {
		listingRepository listing.ListingRepository
		requestRepository request.RequestRepository
	}
)

func NewDashboardService(listingRepository listing.ListingRepository, requestRepository request.RequestRepository) DashboardService {
	return &dashboardService{
		listingRepository: listingRepository,
		requestRepository: requestRepository,
	}
}

// GetSummary reads the caller's listings and requests concurrently. The two
// reads are independent snapshots.
func (s *dashboardService) GetSummary(ctx context.Context, userID string) (*domain.DashboardResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	var res domain.DashboardResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		listings, err := s.listingRepository.GetListingsByUser(gctx, userID)
		if err != nil {
			return err
		}
		res.MyDonations = listing.ToListingResponses(listings)
		return nil
	})

	g.Go(func() error {
		requests, err := s.requestRepository.GetRequestsByUser(gctx, userID)
		if err != nil {
			return err
		}
		res.MyRequests = request.ToFoodRequestResponses(requests)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Stats = domain.DashboardStats{
		TotalDonations: len(res.MyDonations),
		TotalRequests:  len(res.MyRequests),
	}
	return &res, nil
}
