package listing

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

type mockFavoriteRepo struct {
	mock.Mock
}

func (m *mockFavoriteRepo) Set(ctx context.Context, userID string, listing models.Listing) error {
	args := m.Called(ctx, userID, listing)
	return args.Error(0)
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, userID, listingID string) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}

func (m *mockFavoriteRepo) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	args := m.Called(ctx, userID, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepo) GetAll(ctx context.Context, userID string) ([]models.Listing, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Listing), args.Error(1)
}

func (m *mockFavoriteRepo) DeleteByListingID(ctx context.Context, listingID string) error {
	args := m.Called(ctx, listingID)
	return args.Error(0)
}

func (m *mockFavoriteRepo) Subscribe(ctx context.Context, userID string, fn func([]models.Listing)) (func(), error) {
	args := m.Called(ctx, userID, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func()), args.Error(1)
}

func validListing() models.Listing {
	return models.Listing{
		Title:    "Nhà phố lớn",
		Category: "Nhà phố",
		UserID:   "u1",
		Price:    "5 tỷ",
		Area:     "80 m²",
	}
}

func TestCreateListingValidates(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultListingService{Repo: repo}

	cases := []struct {
		name   string
		mutate func(*models.Listing)
	}{
		{"missing title", func(l *models.Listing) { l.Title = "" }},
		{"missing category", func(l *models.Listing) { l.Category = "" }},
		{"missing user", func(l *models.Listing) { l.UserID = "" }},
		{"too many images", func(l *models.Listing) {
			l.Images = make([]string, models.MaxListingImages+1)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := validListing()
			tc.mutate(&l)
			_, err := svc.CreateListing(context.Background(), l)
			assert.Error(t, err)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateListingReturnsStoredPost(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultListingService{Repo: repo}
	input := validListing()
	stored := input
	stored.ID = "l1"

	repo.On("Create", mock.Anything, input).Return("l1", nil)
	repo.On("GetByID", mock.Anything, "l1").Return(&stored, nil)

	got, err := svc.CreateListing(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "l1", got.ID)
	repo.AssertExpectations(t)
}

func TestUpdateListingRejectsNonOwner(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultListingService{Repo: repo}
	existing := validListing()
	existing.ID = "l1"

	repo.On("GetByID", mock.Anything, "l1").Return(&existing, nil)

	_, err := svc.UpdateListing(context.Background(), "l1", "intruder", models.Listing{Title: "Hacked"})

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateListingMergesOnlyProvidedFields(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultListingService{Repo: repo}
	existing := validListing()
	existing.ID = "l1"

	repo.On("GetByID", mock.Anything, "l1").Return(&existing, nil)
	repo.On("Update", mock.Anything, "l1", map[string]any{
		"price": "6 tỷ",
		"title": "Nhà phố rất lớn",
	}).Return(nil)

	_, err := svc.UpdateListing(context.Background(), "l1", "u1", models.Listing{
		Title: "Nhà phố rất lớn",
		Price: "6 tỷ",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateListingRejectsEmptyUpdate(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultListingService{Repo: repo}
	existing := validListing()
	existing.ID = "l1"

	repo.On("GetByID", mock.Anything, "l1").Return(&existing, nil)

	_, err := svc.UpdateListing(context.Background(), "l1", "u1", models.Listing{})

	assert.Error(t, err)
}

func TestDeleteListingSweepsFavorites(t *testing.T) {
	repo := new(mockListingRepo)
	favorites := new(mockFavoriteRepo)
	svc := &DefaultListingService{Repo: repo, Favorites: favorites}
	existing := validListing()
	existing.ID = "l1"

	repo.On("GetByID", mock.Anything, "l1").Return(&existing, nil)
	repo.On("DeleteByID", mock.Anything, "l1").Return(nil)
	favorites.On("DeleteByListingID", mock.Anything, "l1").Return(nil)

	err := svc.DeleteListing(context.Background(), "l1", "u1")

	require.NoError(t, err)
	repo.AssertExpectations(t)
	favorites.AssertExpectations(t)
}

func TestDeleteListingSurvivesSweepFailure(t *testing.T) {
	repo := new(mockListingRepo)
	favorites := new(mockFavoriteRepo)
	svc := &DefaultListingService{Repo: repo, Favorites: favorites}
	existing := validListing()
	existing.ID = "l1"

	repo.On("GetByID", mock.Anything, "l1").Return(&existing, nil)
	repo.On("DeleteByID", mock.Anything, "l1").Return(nil)
	favorites.On("DeleteByListingID", mock.Anything, "l1").Return(assert.AnError)

	assert.NoError(t, svc.DeleteListing(context.Background(), "l1", "u1"))
}

func TestDeleteListingRejectsNonOwner(t *testing.T) {
	repo := new(mockListingRepo)
	svc := &DefaultListingService{Repo: repo}
	existing := validListing()
	existing.ID = "l1"

	repo.On("GetByID", mock.Anything, "l1").Return(&existing, nil)

	err := svc.DeleteListing(context.Background(), "l1", "intruder")

	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
