package feed

import (
	"context"
	"fmt"

	listingRepo "homeland/database/repository/listing"
	"homeland/models"
)

// Service produces the visible home feed: the full listing set run
// through the filter engine.
type Service interface {
	Feed(ctx context.Context, sel Selection, query string) ([]models.Listing, error)

	// Watch subscribes to the live listing feed; fn receives the filtered
	// result set on every store notification.
	Watch(ctx context.Context, sel Selection, query string, fn func([]models.Listing)) (func(), error)
}

// DefaultFeedService implements Service over the listing repository.
type DefaultFeedService struct {
	Repo listingRepo.ListingRepository
}

func (s *DefaultFeedService) Feed(ctx context.Context, sel Selection, query string) ([]models.Listing, error) {
	listings, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return Visible(listings, sel, query), nil
}

func (s *DefaultFeedService) Watch(ctx context.Context, sel Selection, query string, fn func([]models.Listing)) (func(), error) {
	return s.Repo.Subscribe(ctx, func(listings []models.Listing) {
		fn(Visible(listings, sel, query))
	})
}
