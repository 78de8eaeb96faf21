package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeland/models"
	"homeland/services/feed"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubFeedService struct {
	lastSel   feed.Selection
	lastQuery string
	listings  []models.Listing
}

func (s *stubFeedService) Feed(ctx context.Context, sel feed.Selection, query string) ([]models.Listing, error) {
	s.lastSel = sel
	s.lastQuery = query
	return s.listings, nil
}

func (s *stubFeedService) Watch(ctx context.Context, sel feed.Selection, query string, fn func([]models.Listing)) (func(), error) {
	return func() {}, nil
}

func newFeedRouter(svc feed.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &ListingHandler{FeedSvc: svc}
	r := gin.New()
	r.GET("/api/listings", h.FeedHandler)
	return r
}

func TestFeedHandlerResolvesBandLabels(t *testing.T) {
	svc := &stubFeedService{listings: []models.Listing{{ID: "1"}}}
	router := newFeedRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/listings?category=Nh%C3%A0%20ph%E1%BB%91&price=2-10%20t%E1%BB%B7&area=50-100%20m%C2%B2&q=villa", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Nhà phố", svc.lastSel.Category)
	assert.Equal(t, &feed.Band{Kind: feed.BandWithin, Low: 2, High: 10}, svc.lastSel.Price)
	assert.Equal(t, &feed.Band{Kind: feed.BandWithin, Low: 50, High: 100}, svc.lastSel.Area)
	assert.Equal(t, "villa", svc.lastQuery)
}

func TestFeedHandlerEmptyFiltersPassThrough(t *testing.T) {
	svc := &stubFeedService{}
	router := newFeedRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/listings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.lastSel.Price)
	assert.Nil(t, svc.lastSel.Area)
}

func TestFeedHandlerRejectsUnknownBand(t *testing.T) {
	svc := &stubFeedService{}
	router := newFeedRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/listings?price=bogus", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown price band")
}
