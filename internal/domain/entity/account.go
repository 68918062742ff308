package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxAccountNameLength is the maximum length of an account name.
const MaxAccountNameLength = 100

// Account represents a bank account, wallet or card owned by a single user.
// Every transaction belongs to exactly one account and is visible only through it.
type Account struct {
	ID        uuid.UUID
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewAccount creates a new Account entity.
func NewAccount(name, userID string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
