package feed

import (
	"context"
	"testing"

	"homeland/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockListingRepo struct {
	mock.Mock
}

func (m *mockListingRepo) Create(ctx context.Context, listing models.Listing) (string, error) {
	args := m.Called(ctx, listing)
	return args.String(0), args.Error(1)
}

func (m *mockListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Listing), args.Error(1)
}

func (m *mockListingRepo) GetAll(ctx context.Context) ([]models.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *mockListingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Listing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *mockListingRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *mockListingRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockListingRepo) Subscribe(ctx context.Context, fn func([]models.Listing)) (func(), error) {
	args := m.Called(ctx, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}

func TestFeedAppliesSelection(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultFeedService{Repo: repo}
	repo.On("GetAll", mock.Anything).Return(sampleListings(), nil)

	got, err := svc.Feed(context.Background(), Selection{Category: "Căn hộ"}, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestWatchFiltersEverySnapshot(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultFeedService{Repo: repo}

	var deliver func([]models.Listing)
	repo.On("Subscribe", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			deliver = args.Get(1).(func([]models.Listing))
		}).
		Return(func() {}, nil)

	var seen [][]string
	stop, err := svc.Watch(context.Background(), Selection{Category: "Nhà phố"}, "", func(listings []models.Listing) {
		seen = append(seen, ids(listings))
	})
	require.NoError(t, err)
	defer stop()

	deliver(sampleListings())
	deliver(sampleListings()[:2])

	assert.Equal(t, [][]string{{"3"}, {}}, seen)
}
