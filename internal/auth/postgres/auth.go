package postgres

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/frahmantamala/travel-budget/internal"
	"github.com/frahmantamala/travel-budget/internal/auth"
)

// Repository implements auth.UserRepository against the users table.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentialsByEmail(email string) (string, string, error) {
	var userID, passwordHash string
	query := `SELECT id, password_hash FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == sql.ErrNoRows {
			return "", "", internal.ErrInvalidCredentials
		}
		return "", "", err
	}
	return userID, passwordHash, nil
}

func (r *Repository) GetByID(userID string) (*auth.User, error) {
	var u auth.User
	query := `SELECT id, email, name, locale FROM users WHERE id = ?`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Locale); err != nil {
		if err == sql.ErrNoRows {
			return nil, internal.ErrInvalidToken
		}
		return nil, err
	}
	return &u, nil
}
