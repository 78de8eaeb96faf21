package favorite

import (
	"context"
	"fmt"

	"homeland/models"
	"homeland/utils"

	"go.uber.org/zap"
)

// Toggle deletes the favorite snapshot when currently favorited and
// stores the full listing snapshot when not. A single remote write; the
// returned state is only flipped after the store confirms it.
func (s *DefaultFavoriteService) Toggle(ctx context.Context, userID string, listing models.Listing, isFavorite bool) (bool, error) {
	if userID == "" {
		return isFavorite, ErrAuthenticationRequired
	}
	if listing.ID == "" {
		return isFavorite, fmt.Errorf("listing id is required")
	}

	logger := utils.GetLogger()
	if isFavorite {
		if err := s.Repo.Delete(ctx, userID, listing.ID); err != nil {
			logger.Error("failed to remove favorite",
				zap.String("userID", userID), zap.String("listingID", listing.ID), zap.Error(err))
			return isFavorite, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}

	if err := s.Repo.Set(ctx, userID, listing); err != nil {
		logger.Error("failed to store favorite",
			zap.String("userID", userID), zap.String("listingID", listing.ID), zap.Error(err))
		return isFavorite, fmt.Errorf("failed to store favorite: %w", err)
	}
	return true, nil
}

// IsFavorite reports current membership; the initial state of a detail
// screen comes from this read, not from local tracking.
func (s *DefaultFavoriteService) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	return s.Repo.Exists(ctx, userID, listingID)
}

// List returns the user's favorite snapshots, newest first.
func (s *DefaultFavoriteService) List(ctx context.Context, userID string) ([]models.Listing, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	return s.Repo.GetAll(ctx, userID)
}

// Watch subscribes to the user's live favorites list.
func (s *DefaultFavoriteService) Watch(ctx context.Context, userID string, fn func([]models.Listing)) (func(), error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	return s.Repo.Subscribe(ctx, userID, fn)
}
