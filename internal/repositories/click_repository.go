package repositories

import (
	"context"
	"fmt"

	"github.com/zipplink/zipp/internal/database"
	"github.com/zipplink/zipp/internal/model"
)

// ClickRepositoryInterface defines click storage operations.
type ClickRepositoryInterface interface {
	SaveClick(ctx context.Context, click *model.Click) error
}

// ClickRepository implements ClickRepositoryInterface with PostgreSQL.
type ClickRepository struct {
	DB *database.DB
}

// NewClickRepository creates a ClickRepository.
func NewClickRepository(db *database.DB) *ClickRepository {
	return &ClickRepository{DB: db}
}

// SaveClick appends one click row. The timestamp is server-assigned.
func (r *ClickRepository) SaveClick(ctx context.Context, click *model.Click) error {
	query := `INSERT INTO clicks (url_id, city, device, country)
              VALUES ($1, $2, $3, $4)
              RETURNING id, created_at`

	err := r.DB.Pool.QueryRow(ctx, query, click.URLID, click.City, click.Device, click.Country).
		Scan(&click.ID, &click.Created)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}
