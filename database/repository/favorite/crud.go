package favoriteRepo

import (
	"context"

	"homeland/database"
	"homeland/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Set stores the listing snapshot as the user's favorite, overwriting any
// previous snapshot of the same listing.
func (r *firestoreFavoriteRepo) Set(ctx context.Context, userID string, listing models.Listing) error {
	if _, err := r.favorites(userID).Doc(listing.ID).Set(ctx, listing); err != nil {
		return database.WriteError(err)
	}
	return nil
}

// Delete removes the user's favorite snapshot of a listing.
func (r *firestoreFavoriteRepo) Delete(ctx context.Context, userID, listingID string) error {
	if _, err := r.favorites(userID).Doc(listingID).Delete(ctx); err != nil {
		return database.WriteError(err)
	}
	return nil
}

// Exists reports whether the user has favorited the listing.
func (r *firestoreFavoriteRepo) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	_, err := r.favorites(userID).Doc(listingID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, database.ReadError(err)
	}
	return true, nil
}

// GetAll returns the user's favorite snapshots, newest first.
func (r *firestoreFavoriteRepo) GetAll(ctx context.Context, userID string) ([]models.Listing, error) {
	it := r.favorites(userID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer it.Stop()

	var favorites []models.Listing
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, database.ReadError(err)
		}
		var listing models.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, database.ReadError(err)
		}
		listing.ID = doc.Ref.ID
		favorites = append(favorites, listing)
	}
	return favorites, nil
}

// DeleteByListingID removes every user's snapshot of the given listing via
// a collection-group query on the stored listing id.
func (r *firestoreFavoriteRepo) DeleteByListingID(ctx context.Context, listingID string) error {
	it := r.client.CollectionGroup("favorites").Where("id", "==", listingID).Documents(ctx)
	defer it.Stop()

	for {
		doc, err := it.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return database.ReadError(err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return database.WriteError(err)
		}
	}
}
