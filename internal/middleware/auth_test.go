package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zipplink/zipp/internal/auth"
	"github.com/zipplink/zipp/internal/middleware"
)

func TestAuthenticator_ValidToken(t *testing.T) {
	manager := auth.New("test-secret", time.Hour)
	token, err := manager.IssueToken(42)
	require.NoError(t, err)

	var gotID uint
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = middleware.UserID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/url/urls", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	middleware.Authenticator(manager)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOK)
	assert.Equal(t, uint(42), gotID)
}

func TestAuthenticator_MissingToken(t *testing.T) {
	manager := auth.New("test-secret", time.Hour)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	req := httptest.NewRequest(http.MethodGet, "/url/urls", nil)
	rec := httptest.NewRecorder()

	middleware.Authenticator(manager)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized - No token provided"}`, rec.Body.String())
}

func TestAuthenticator_InvalidToken(t *testing.T) {
	manager := auth.New("test-secret", time.Hour)
	foreign, err := auth.New("other-secret", time.Hour).IssueToken(1)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad token")
	})

	req := httptest.NewRequest(http.MethodGet, "/url/urls", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	rec := httptest.NewRecorder()

	middleware.Authenticator(manager)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Unauthorized - Invalid token"}`, rec.Body.String())
}
