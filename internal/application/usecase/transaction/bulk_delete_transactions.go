package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// BulkDeleteTransactionsInput represents the input for bulk transaction deletion.
type BulkDeleteTransactionsInput struct {
	TransactionIDs []uuid.UUID
	UserID         string
}

// BulkDeleteTransactionsOutput represents the output of bulk transaction deletion.
type BulkDeleteTransactionsOutput struct {
	DeletedCount int64
}

// BulkDeleteTransactionsUseCase handles bulk transaction deletion logic.
type BulkDeleteTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
}

// NewBulkDeleteTransactionsUseCase creates a new BulkDeleteTransactionsUseCase instance.
func NewBulkDeleteTransactionsUseCase(transactionRepo adapter.TransactionRepository, summaryCache adapter.SummaryCache) *BulkDeleteTransactionsUseCase {
	return &BulkDeleteTransactionsUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the bulk transaction deletion.
// Transactions that are not visible to the user are skipped.
func (uc *BulkDeleteTransactionsUseCase) Execute(ctx context.Context, input BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	// Validate that IDs list is not empty
	if len(input.TransactionIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"transaction IDs list cannot be empty",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	deletedCount, err := uc.transactionRepo.BulkDelete(ctx, input.TransactionIDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete transactions: %w", err)
	}
	if deletedCount > 0 {
		summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)
	}

	return &BulkDeleteTransactionsOutput{
		DeletedCount: deletedCount,
	}, nil
}
