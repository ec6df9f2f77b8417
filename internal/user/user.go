package user

import (
	"errors"
	"time"
)

// User represents the internal user model
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	HomeCurrency string    `json:"home_currency" db:"home_currency"`
	Locale       string    `json:"locale" db:"locale"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

var ErrNotFound = errors.New("user not found")
