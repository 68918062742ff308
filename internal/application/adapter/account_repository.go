package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
// Every lookup is scoped to the owning user.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByIDAndUser retrieves an account owned by the user.
	// Returns domainerror.ErrAccountNotFound when it does not exist or belongs to someone else.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Account, error)

	// FindByUser retrieves all accounts owned by the user, ordered by name.
	FindByUser(ctx context.Context, userID string) ([]*entity.Account, error)

	// ExistsByNameAndUser checks if the user already has an account with the given name.
	ExistsByNameAndUser(ctx context.Context, name string, userID string) (bool, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// Delete soft-deletes an account together with its transactions.
	Delete(ctx context.Context, id uuid.UUID, userID string) error

	// BulkDelete soft-deletes the user's accounts among ids together with their transactions.
	// Returns the count of deleted accounts.
	BulkDelete(ctx context.Context, ids []uuid.UUID, userID string) (int64, error)
}
