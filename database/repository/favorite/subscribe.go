package favoriteRepo

import (
	"context"

	"homeland/models"
	"homeland/utils"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Subscribe watches one user's favorites and invokes fn with the full
// current list on every change until the returned stop function is called.
func (r *firestoreFavoriteRepo) Subscribe(ctx context.Context, userID string, fn func([]models.Listing)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	it := r.favorites(userID).OrderBy("createdAt", firestore.Desc).Snapshots(ctx)

	go func() {
		defer it.Stop()
		logger := utils.GetLogger()
		for {
			snap, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Warn("favorites subscription closed",
						zap.String("userID", userID), zap.Error(err))
				}
				return
			}
			favorites, err := decodeFavoriteDocs(snap)
			if err != nil {
				logger.Warn("failed to decode favorites snapshot", zap.Error(err))
				continue
			}
			fn(favorites)
		}
	}()
	return cancel, nil
}

func decodeFavoriteDocs(snap *firestore.QuerySnapshot) ([]models.Listing, error) {
	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, err
	}
	favorites := make([]models.Listing, 0, len(docs))
	for _, doc := range docs {
		var listing models.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, err
		}
		listing.ID = doc.Ref.ID
		favorites = append(favorites, listing)
	}
	return favorites, nil
}
