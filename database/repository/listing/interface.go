package listingRepo

import (
	"context"

	"homeland/database"
	"homeland/models"

	"cloud.google.com/go/firestore"
)

// ListingRepository is the read/write contract against the flat
// real_estate_posts collection.
type ListingRepository interface {
	Create(ctx context.Context, listing models.Listing) (string, error)
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Listing, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error

	// Subscribe delivers the full current result set on every change,
	// ordered by creation time descending, until the returned stop
	// function is called.
	Subscribe(ctx context.Context, fn func([]models.Listing)) (func(), error)
}

type firestoreListingRepo struct {
	coll *firestore.CollectionRef
}

// NewFirestoreListingRepo returns a ListingRepository backed by Firestore.
func NewFirestoreListingRepo() ListingRepository {
	return &firestoreListingRepo{
		coll: database.FirestoreClient.Collection("real_estate_posts"),
	}
}
