package listingRepo

import (
	"context"
	"time"

	"homeland/database"
	"homeland/models"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Create inserts a new listing and returns its ID.
func (r *firestoreListingRepo) Create(ctx context.Context, listing models.Listing) (string, error) {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt

	if _, err := r.coll.Doc(listing.ID).Set(ctx, listing); err != nil {
		return "", database.WriteError(err)
	}
	return listing.ID, nil
}

// GetByID returns a listing by its document ID.
func (r *firestoreListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	doc, err := r.coll.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, database.ErrNotFound
		}
		return nil, database.ReadError(err)
	}
	var listing models.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, database.ReadError(err)
	}
	listing.ID = doc.Ref.ID
	return &listing, nil
}

// GetAll returns every listing ordered by creation time, newest first.
func (r *firestoreListingRepo) GetAll(ctx context.Context) ([]models.Listing, error) {
	return r.query(ctx, r.coll.OrderBy("createdAt", firestore.Desc))
}

// GetByUserID returns the listings posted by one user.
func (r *firestoreListingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Listing, error) {
	return r.query(ctx, r.coll.Where("userId", "==", userID))
}

// Update merges the given fields into an existing listing document.
func (r *firestoreListingRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	fields["updatedAt"] = time.Now()
	if _, err := r.coll.Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		if status.Code(err) == codes.NotFound {
			return database.ErrNotFound
		}
		return database.WriteError(err)
	}
	return nil
}

// DeleteByID removes a listing document.
func (r *firestoreListingRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.coll.Doc(id).Delete(ctx); err != nil {
		return database.WriteError(err)
	}
	return nil
}

func (r *firestoreListingRepo) query(ctx context.Context, q firestore.Query) ([]models.Listing, error) {
	it := q.Documents(ctx)
	defer it.Stop()

	var listings []models.Listing
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
		listings = append(listings, listing)
	}
	return listings, nil
}
