package favorite

import (
	"context"
	"errors"

	favoriteRepo "homeland/database/repository/favorite"
	"homeland/models"
)

// ErrAuthenticationRequired is returned when an operation that needs a
// signed-in user is attempted without one. No store write happens.
var ErrAuthenticationRequired = errors.New("authentication required")

// FavoriteService flips and reads per-user favorite membership.
type FavoriteService interface {
	// Toggle flips the membership of listing for userID and returns the
	// confirmed new state. The state only changes after the store
	// acknowledges the write; on error the previous state stands.
	Toggle(ctx context.Context, userID string, listing models.Listing, isFavorite bool) (bool, error)

	IsFavorite(ctx context.Context, userID, listingID string) (bool, error)
	List(ctx context.Context, userID string) ([]models.Listing, error)
	Watch(ctx context.Context, userID string, fn func([]models.Listing)) (func(), error)
}

// DefaultFavoriteService implements FavoriteService over the favorites
// repository.
type DefaultFavoriteService struct {
	Repo favoriteRepo.FavoriteRepository
}
