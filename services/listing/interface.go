package listing

import (
	"context"
	"errors"

	favoriteRepo "homeland/database/repository/favorite"
	listingRepo "homeland/database/repository/listing"
	"homeland/models"
)

// ErrNotOwner is returned when a user tries to modify a post they did not
// create.
var ErrNotOwner = errors.New("not the owner of this listing")

// ListingService is the CRUD surface over real-estate posts.
type ListingService interface {
	CreateListing(ctx context.Context, listing models.Listing) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	GetByOwner(ctx context.Context, userID string) ([]models.Listing, error)
	UpdateListing(ctx context.Context, id, userID string, update models.Listing) (*models.Listing, error)
	DeleteListing(ctx context.Context, id, userID string) error
}

// DefaultListingService implements ListingService. The favorites
// repository is used only for the delete cascade.
type DefaultListingService struct {
	Repo      listingRepo.ListingRepository
	Favorites favoriteRepo.FavoriteRepository
}
