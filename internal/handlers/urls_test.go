package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/zipplink/zipp/internal/handlers"
	"github.com/zipplink/zipp/internal/middleware"
	"github.com/zipplink/zipp/internal/model"
	"github.com/zipplink/zipp/internal/repositories"
	"github.com/zipplink/zipp/internal/repositories/mocks"
	"github.com/zipplink/zipp/internal/service"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newURLHandler(t *testing.T) (*handlers.Handler, *mocks.MockURLRepositoryInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	urls := mocks.NewMockURLRepositoryInterface(ctrl)
	shortener := service.NewShortenerService(urls, zap.NewNop(), "http://localhost:8080")
	h := handlers.NewHandler(shortener, nil, nil, nil, zap.NewNop())
	return h, urls
}

func authed(req *http.Request, userID uint) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestShortenURL_Created(t *testing.T) {
	h, urls := newURLHandler(t)

	urls.EXPECT().SaveURL(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, obj *model.URLObject) error {
			obj.ID = 11
			return nil
		})

	body := `{"originalUrl":"https://example.com/some/page"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/url/shorten", strings.NewReader(body)), 3)
	rec := httptest.NewRecorder()

	h.ShortenURL(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "URL shortened successfully")
	// The returned short_url is the shareable address, not the bare code.
	assert.Contains(t, rec.Body.String(), `"short_url":"http://localhost:8080/`)
	assert.Contains(t, rec.Body.String(), `"qr_code":"data:image/png;base64,`)
}

func TestShortenURL_InvalidURL(t *testing.T) {
	h, _ := newURLHandler(t)

	body := `{"originalUrl":"not a url"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/url/shorten", strings.NewReader(body)), 3)
	rec := httptest.NewRecorder()

	h.ShortenURL(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation Error")
}

func TestListURLs(t *testing.T) {
	h, urls := newURLHandler(t)

	urls.EXPECT().GetURLsByUser(gomock.Any(), uint(3)).
		Return([]*model.URLObject{
			{ID: 1, OriginalURL: "https://example.com", ShortURL: "abc123", UserID: 3},
		}, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/url/urls", nil), 3)
	rec := httptest.NewRecorder()

	h.ListURLs(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "URLs fetched successfully")
	assert.Contains(t, rec.Body.String(), "abc123")
}

func TestListURLs_EmptyIsAnArray(t *testing.T) {
	h, urls := newURLHandler(t)

	urls.EXPECT().GetURLsByUser(gomock.Any(), uint(3)).Return(nil, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/url/urls", nil), 3)
	rec := httptest.NewRecorder()

	h.ListURLs(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestSearchURLs(t *testing.T) {
	h, urls := newURLHandler(t)

	urls.EXPECT().SearchURLs(gomock.Any(), uint(3), "exam").
		Return([]*model.URLObject{
			{ID: 1, OriginalURL: "https://example.com", ShortURL: "abc123", UserID: 3},
		}, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/url/search?query=exam", nil), 3)
	rec := httptest.NewRecorder()

	h.SearchURLs(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Search results fetched successfully")
}

func TestDeleteURL_NotOwned(t *testing.T) {
	h, urls := newURLHandler(t)

	urls.EXPECT().DeleteURL(gomock.Any(), uint(9), uint(3)).
		Return(nil, repositories.ErrNotFound)

	req := authed(httptest.NewRequest(http.MethodDelete, "/url/9", nil), 3)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("urlID", "9")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.DeleteURL(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "URL not found or you don't have permission to delete it")
}

func TestAnalytics_NotFound(t *testing.T) {
	h, urls := newURLHandler(t)

	urls.EXPECT().GetAnalytics(gomock.Any(), uint(77)).
		Return(nil, repositories.ErrNotFound)

	req := authed(httptest.NewRequest(http.MethodGet, "/analytics/77", nil), 3)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("urlID", "77")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.Analytics(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"URL not found"}`, rec.Body.String())
}

func TestAnalytics_Aggregate(t *testing.T) {
	h, urls := newURLHandler(t)

	urls.EXPECT().GetAnalytics(gomock.Any(), uint(42)).
		Return(&model.URLAnalytics{
			URLObject:   model.URLObject{ID: 42, OriginalURL: "https://example.com", ShortURL: "abc123"},
			TotalClicks: 2,
			ClickDetails: []model.Click{
				{ID: 1, URLID: 42, City: "Berlin", Device: "Windows", Country: "Germany"},
				{ID: 2, URLID: 42, City: "Unknown", Device: "Unknown", Country: "Unknown"},
			},
		}, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/analytics/42", nil), 3)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("urlID", "42")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rec := httptest.NewRecorder()

	h.Analytics(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_clicks":2`)
	assert.Contains(t, rec.Body.String(), "Berlin")
}
