package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/zipplink/zipp/internal/database"
	"github.com/zipplink/zipp/internal/model"
)

// UserRepositoryInterface defines account storage operations.
type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
}

// UserRepository implements UserRepositoryInterface with PostgreSQL.
type UserRepository struct {
	DB *database.DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts an account and fills in its assigned id and
// creation timestamp.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (name, email, password)
              VALUES ($1, $2, $3)
              RETURNING id, created_at`

	err := r.DB.Pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.Created)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// GetUserByEmail fetches an account by email, ErrNotFound when absent.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = $1`
	user := &model.User{}
	err := r.DB.Pool.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

// GetUserByID fetches an account by id, ErrNotFound when absent.
func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE id = $1`
	user := &model.User{}
	err := r.DB.Pool.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}
