package model

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer that orders are placed for.
// Phone is stored normalized (digits only) or nil when not provided.
type Client struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Email       string    `gorm:"uniqueIndex;not null"`
	Phone       *string   `gorm:"index"`
	Address     *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
