package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// Transactions are owned through their account, so every user-scoped method joins on accounts.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch creates several transactions in a single database transaction.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByIDAndUser retrieves a transaction with its account and category names.
	// Returns domainerror.ErrTransactionNotFound when the transaction is not visible to the user.
	FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.TransactionDetails, error)

	// FindByFilter retrieves transactions matching the filter, newest first.
	FindByFilter(ctx context.Context, filter entity.TransactionFilter) ([]*entity.TransactionDetails, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction visible to the user.
	Delete(ctx context.Context, id uuid.UUID, userID string) error

	// BulkDelete soft-deletes the user's transactions among ids.
	// Returns the count of deleted transactions.
	BulkDelete(ctx context.Context, ids []uuid.UUID, userID string) (int64, error)
}
