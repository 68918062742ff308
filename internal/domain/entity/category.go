package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxCategoryNameLength is the maximum length of a category name.
const MaxCategoryNameLength = 50

// Category represents a user-defined transaction category.
type Category struct {
	ID        uuid.UUID
	Name      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(name, userID string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
