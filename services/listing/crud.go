package listing

import (
	"context"
	"fmt"

	"homeland/models"
	"homeland/utils"

	"go.uber.org/zap"
)

// CreateListing validates and stores a new post.
func (s *DefaultListingService) CreateListing(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	if listing.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if listing.Category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if listing.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if len(listing.Images) > models.MaxListingImages {
		return nil, fmt.Errorf("a listing can carry at most %d images", models.MaxListingImages)
	}

	id, err := s.Repo.Create(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

// GetListing returns one post by ID.
func (s *DefaultListingService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetByOwner returns the posts created by one user.
func (s *DefaultListingService) GetByOwner(ctx context.Context, userID string) ([]models.Listing, error) {
	return s.Repo.GetByUserID(ctx, userID)
}

// UpdateListing merges the non-empty fields of update into an existing
// post. Only the owner may update.
func (s *DefaultListingService) UpdateListing(ctx context.Context, id, userID string, update models.Listing) (*models.Listing, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrNotOwner
	}

	fields := map[string]any{}
	if update.Title != "" {
		fields["title"] = update.Title
	}
	if update.Description != "" {
		fields["description"] = update.Description
	}
	if update.Price != "" {
		fields["price"] = update.Price
	}
	if update.Area != "" {
		fields["area"] = update.Area
	}
	if update.Category != "" {
		fields["category"] = update.Category
	}
	if update.Location != "" {
		fields["location"] = update.Location
	}
	if update.Bedrooms != 0 {
		fields["bedrooms"] = update.Bedrooms
	}
	if update.Bathrooms != 0 {
		fields["bathrooms"] = update.Bathrooms
	}
	if update.Floors != 0 {
		fields["floors"] = update.Floors
	}
	if update.Contact != (models.Contact{}) {
		fields["contact"] = update.Contact
	}
	if update.Images != nil {
		if len(update.Images) > models.MaxListingImages {
			return nil, fmt.Errorf("a listing can carry at most %d images", models.MaxListingImages)
		}
		fields["images"] = update.Images
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

// DeleteListing removes a post and then sweeps its favorite snapshots
// across users. The sweep is best effort: the post is already gone and a
// stale snapshot only lingers until the next favorites read.
func (s *DefaultListingService) DeleteListing(ctx context.Context, id, userID string) error {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	if err := s.Favorites.DeleteByListingID(ctx, id); err != nil {
		utils.GetLogger().Warn("failed to sweep favorite snapshots after delete",
			zap.String("listingID", id), zap.Error(err))
	}
	return nil
}
