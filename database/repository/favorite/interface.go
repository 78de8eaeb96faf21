package favoriteRepo

import (
	"context"

	"homeland/database"
	"homeland/models"

	"cloud.google.com/go/firestore"
)

// FavoriteRepository manages per-user favorite snapshots stored under
// user/{uid}/favorites, keyed by listing ID. Membership is binary: the
// document exists iff the listing is favorited.
type FavoriteRepository interface {
	Set(ctx context.Context, userID string, listing models.Listing) error
	Delete(ctx context.Context, userID, listingID string) error
	Exists(ctx context.Context, userID, listingID string) (bool, error)
	GetAll(ctx context.Context, userID string) ([]models.Listing, error)

	// DeleteByListingID removes the snapshots of one listing across all
	// users (cascade after a listing delete).
	DeleteByListingID(ctx context.Context, listingID string) error

	// Subscribe delivers the user's full favorites list on every change
	// until the returned stop function is called.
	Subscribe(ctx context.Context, userID string, fn func([]models.Listing)) (func(), error)
}

type firestoreFavoriteRepo struct {
	client *firestore.Client
}

// NewFirestoreFavoriteRepo returns a FavoriteRepository backed by Firestore.
func NewFirestoreFavoriteRepo() FavoriteRepository {
	return &firestoreFavoriteRepo{client: database.FirestoreClient}
}

func (r *firestoreFavoriteRepo) favorites(userID string) *firestore.CollectionRef {
	return r.client.Collection("user").Doc(userID).Collection("favorites")
}
