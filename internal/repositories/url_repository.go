package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zipplink/zipp/internal/database"
	"github.com/zipplink/zipp/internal/model"
)

// URLRepositoryInterface defines link storage operations.
type URLRepositoryInterface interface {
	SaveURL(ctx context.Context, urlObj *model.URLObject) error
	GetURLByShortCode(ctx context.Context, code string) (*model.URLObject, error)
	GetURLsByUser(ctx context.Context, userID uint) ([]*model.URLObject, error)
	SearchURLs(ctx context.Context, userID uint, term string) ([]*model.URLObject, error)
	DeleteURL(ctx context.Context, id, userID uint) (*model.URLObject, error)
	GetAnalytics(ctx context.Context, id uint) (*model.URLAnalytics, error)
	Ping(ctx context.Context) error
}

// URLRepository implements URLRepositoryInterface with PostgreSQL.
type URLRepository struct {
	DB *database.DB
}

// NewURLRepository creates a URLRepository.
func NewURLRepository(db *database.DB) *URLRepository {
	return &URLRepository{DB: db}
}

const urlColumns = `id, original_url, short_url, user_id, COALESCE(title, ''), qr_code, created_at`

// SaveURL inserts a link row and fills in its assigned id and creation
// timestamp.
func (r *URLRepository) SaveURL(ctx context.Context, urlObj *model.URLObject) error {
	query := `INSERT INTO urls (original_url, short_url, user_id, title, qr_code)
              VALUES ($1, $2, $3, NULLIF($4, ''), $5)
              RETURNING id, created_at`

	err := r.DB.Pool.QueryRow(ctx, query,
		urlObj.OriginalURL, urlObj.ShortURL, urlObj.UserID, urlObj.Title, urlObj.QRCode).
		Scan(&urlObj.ID, &urlObj.Created)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetURLByShortCode fetches the link carrying the exact short code.
// Matching is case-sensitive; ErrNotFound when no row has the code.
func (r *URLRepository) GetURLByShortCode(ctx context.Context, code string) (*model.URLObject, error) {
	query := `SELECT ` + urlColumns + ` FROM urls WHERE short_url = $1`
	urlObj := &model.URLObject{}
	err := r.DB.Pool.QueryRow(ctx, query, code).Scan(
		&urlObj.ID, &urlObj.OriginalURL, &urlObj.ShortURL, &urlObj.UserID,
		&urlObj.Title, &urlObj.QRCode, &urlObj.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return urlObj, nil
}

// GetURLsByUser returns a user's links, newest first.
func (r *URLRepository) GetURLsByUser(ctx context.Context, userID uint) ([]*model.URLObject, error) {
	query := `SELECT ` + urlColumns + ` FROM urls WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	return scanURLRows(rows)
}

// SearchURLs returns a user's links whose original URL, short code or
// title contains term (case-insensitive).
func (r *URLRepository) SearchURLs(ctx context.Context, userID uint, term string) ([]*model.URLObject, error) {
	query := `SELECT ` + urlColumns + ` FROM urls
              WHERE user_id = $1
                AND (original_url ILIKE $2 OR short_url ILIKE $2 OR title ILIKE $2)
              ORDER BY created_at DESC`
	rows, err := r.DB.Pool.Query(ctx, query, userID, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	return scanURLRows(rows)
}

// DeleteURL removes a link owned by userID and returns the deleted row.
// ErrNotFound covers both an absent id and a foreign owner; click rows
// cascade at the schema level.
func (r *URLRepository) DeleteURL(ctx context.Context, id, userID uint) (*model.URLObject, error) {
	query := `DELETE FROM urls WHERE id = $1 AND user_id = $2
              RETURNING ` + urlColumns
	urlObj := &model.URLObject{}
	err := r.DB.Pool.QueryRow(ctx, query, id, userID).Scan(
		&urlObj.ID, &urlObj.OriginalURL, &urlObj.ShortURL, &urlObj.UserID,
		&urlObj.Title, &urlObj.QRCode, &urlObj.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database delete error: %w", err)
	}
	return urlObj, nil
}

// GetAnalytics returns the link row together with its click total and
// click detail list, newest clicks first.
func (r *URLRepository) GetAnalytics(ctx context.Context, id uint) (*model.URLAnalytics, error) {
	analytics := &model.URLAnalytics{}

	query := `SELECT ` + urlColumns + ` FROM urls WHERE id = $1`
	err := r.DB.Pool.QueryRow(ctx, query, id).Scan(
		&analytics.ID, &analytics.OriginalURL, &analytics.ShortURL, &analytics.UserID,
		&analytics.Title, &analytics.QRCode, &analytics.Created,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	clicksQuery := `SELECT id, url_id, COALESCE(city, ''), COALESCE(device, ''), COALESCE(country, ''), created_at
                    FROM clicks WHERE url_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.Pool.Query(ctx, clicksQuery, id)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var click model.Click
		if err := rows.Scan(&click.ID, &click.URLID, &click.City, &click.Device, &click.Country, &click.Created); err != nil {
			return nil, fmt.Errorf("failed to scan click row: %w", err)
		}
		analytics.ClickDetails = append(analytics.ClickDetails, click)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database rows error: %w", err)
	}

	analytics.TotalClicks = int64(len(analytics.ClickDetails))
	return analytics, nil
}

// Ping checks database availability.
func (r *URLRepository) Ping(ctx context.Context) error {
	_, err := r.DB.Pool.Exec(ctx, "SELECT 1")
	return err
}

func scanURLRows(rows pgx.Rows) ([]*model.URLObject, error) {
	var results []*model.URLObject
	for rows.Next() {
		obj := &model.URLObject{}
		err := rows.Scan(&obj.ID, &obj.OriginalURL, &obj.ShortURL, &obj.UserID,
			&obj.Title, &obj.QRCode, &obj.Created)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database rows error: %w", err)
	}
	return results, nil
}
