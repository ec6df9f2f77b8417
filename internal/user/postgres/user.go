package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/frahmantamala/travel-budget/internal/user"
)

// UserRepository implements user.Repository on sqlx.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *user.User) error {
	query := `
INSERT INTO users (id, email, name, password_hash, home_currency, locale, created_at, updated_at)
VALUES (:id, :email, :name, :password_hash, :home_currency, :locale, :created_at, :updated_at)
`
	if _, err := r.db.NamedExec(query, u); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(userID string) (*user.User, error) {
	var u user.User
	query := `SELECT id, email, name, password_hash, home_currency, locale, created_at, updated_at FROM users WHERE id = $1`
	if err := r.db.Get(&u, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	var u user.User
	query := `SELECT id, email, name, password_hash, home_currency, locale, created_at, updated_at FROM users WHERE email = $1`
	if err := r.db.Get(&u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Ping fails fast on a bad connection during startup.
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
