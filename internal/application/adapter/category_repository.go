package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByIDAndUser retrieves a category owned by the user.
	// Returns domainerror.ErrCategoryNotFound when it does not exist or belongs to someone else.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Category, error)

	// FindByUser retrieves all categories owned by the user, ordered by name.
	FindByUser(ctx context.Context, userID string) ([]*entity.Category, error)

	// ExistsByNameAndUser checks if a category with the given name exists for the user.
	ExistsByNameAndUser(ctx context.Context, name string, userID string) (bool, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete soft-deletes a category and detaches it from its transactions.
	Delete(ctx context.Context, id uuid.UUID, userID string) error

	// BulkDelete soft-deletes the user's categories among ids and detaches them from transactions.
	// Returns the count of deleted categories.
	BulkDelete(ctx context.Context, ids []uuid.UUID, userID string) (int64, error)
}
