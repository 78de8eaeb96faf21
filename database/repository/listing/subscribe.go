package listingRepo

import (
	"context"

	"homeland/models"
	"homeland/utils"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Subscribe watches the listing collection and invokes fn with the full
// current result set whenever it changes. The returned function tears the
// subscription down; fn is never called after it returns.
func (r *firestoreListingRepo) Subscribe(ctx context.Context, fn func([]models.Listing)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	it := r.coll.OrderBy("createdAt", firestore.Desc).Snapshots(ctx)

	go func() {
		defer it.Stop()
		logger := utils.GetLogger()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Warn("listing subscription closed", zap.Error(err))
				}
				return
			}
			listings, err := decodeListingDocs(snap)
			if err != nil {
				logger.Warn("failed to decode listing snapshot", zap.Error(err))
				continue
			}
			fn(listings)
		}
	}()
	return cancel, nil
}

func decodeListingDocs(snap *firestore.QuerySnapshot) ([]models.Listing, error) {
	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, err
	}
	listings := make([]models.Listing, 0, len(docs))
	for _, doc := range docs {
		var listing models.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, err
		}
		listing.ID = doc.Ref.ID
		listings = append(listings, listing)
	}
	return listings, nil
}
