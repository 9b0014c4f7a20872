package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate and act on the API.
// PasswordHash is a bcrypt hash — the plaintext password is never stored.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
