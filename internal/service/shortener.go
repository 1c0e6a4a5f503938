package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/zipplink/zipp/internal/model"
	"github.com/zipplink/zipp/internal/repositories"
	"github.com/zipplink/zipp/internal/util"
	"go.uber.org/zap"
)

// ShortenerService owns the link lifecycle: creating short codes,
// resolving them and serving per-link analytics.
type ShortenerService struct {
	URLs    repositories.URLRepositoryInterface
	Logger  *zap.Logger
	BaseURL string
}

// NewShortenerService creates a ShortenerService. baseURL is the public
// prefix short links are served under.
func NewShortenerService(urls repositories.URLRepositoryInterface, logger *zap.Logger, baseURL string) *ShortenerService {
	return &ShortenerService{
		URLs:    urls,
		Logger:  logger,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Shorten creates a new link for userID: random short code, QR image
// for the shareable address, one row in storage.
func (s *ShortenerService) Shorten(ctx context.Context, userID uint, originalURL string) (*model.URLObject, error) {
	code, err := util.GenerateShortCode()
	if err != nil {
		return nil, err
	}

	qr, err := util.QRCodeDataURL(s.ShortURLFor(code))
	if err != nil {
		return nil, err
	}

	urlObj := &model.URLObject{
		OriginalURL: originalURL,
		ShortURL:    code,
		UserID:      userID,
		QRCode:      qr,
	}

	if err := s.URLs.SaveURL(ctx, urlObj); err != nil {
		return nil, fmt.Errorf("save url: %w", err)
	}
	return urlObj, nil
}

// Resolve looks up the link carrying the exact short code. The lookup
// is case-sensitive and has no side effects; click recording is the
// caller's concern. repositories.ErrNotFound passes through untouched.
func (s *ShortenerService) Resolve(ctx context.Context, code string) (*model.URLObject, error) {
	return s.URLs.GetURLByShortCode(ctx, code)
}

// ListUserURLs returns the user's links, newest first.
func (s *ShortenerService) ListUserURLs(ctx context.Context, userID uint) ([]*model.URLObject, error) {
	return s.URLs.GetURLsByUser(ctx, userID)
}

// SearchUserURLs returns the user's links matching term.
func (s *ShortenerService) SearchUserURLs(ctx context.Context, userID uint, term string) ([]*model.URLObject, error) {
	return s.URLs.SearchURLs(ctx, userID, term)
}

// Delete removes a link the user owns and returns the removed row.
func (s *ShortenerService) Delete(ctx context.Context, id, userID uint) (*model.URLObject, error) {
	return s.URLs.DeleteURL(ctx, id, userID)
}

// Analytics returns the link plus its click aggregate.
func (s *ShortenerService) Analytics(ctx context.Context, id uint) (*model.URLAnalytics, error) {
	return s.URLs.GetAnalytics(ctx, id)
}

// ShortURLFor builds the shareable address for a short code.
func (s *ShortenerService) ShortURLFor(code string) string {
	return s.BaseURL + "/" + code
}

// Ping reports storage availability.
func (s *ShortenerService) Ping(ctx context.Context) error {
	return s.URLs.Ping(ctx)
}
