package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// BulkDeleteAccountsInput represents the input for bulk account deletion.
type BulkDeleteAccountsInput struct {
	AccountIDs []uuid.UUID
	UserID     string
}

// BulkDeleteAccountsOutput represents the output of bulk account deletion.
type BulkDeleteAccountsOutput struct {
	DeletedCount int64
}

// BulkDeleteAccountsUseCase handles bulk account deletion.
// IDs that do not belong to the user are skipped.
type BulkDeleteAccountsUseCase struct {
	accountRepo  adapter.AccountRepository
	summaryCache adapter.SummaryCache
}

// NewBulkDeleteAccountsUseCase creates a new BulkDeleteAccountsUseCase instance.
func NewBulkDeleteAccountsUseCase(accountRepo adapter.AccountRepository, summaryCache adapter.SummaryCache) *BulkDeleteAccountsUseCase {
	return &BulkDeleteAccountsUseCase{
		accountRepo:  accountRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the bulk account deletion.
func (uc *BulkDeleteAccountsUseCase) Execute(ctx context.Context, input BulkDeleteAccountsInput) (*BulkDeleteAccountsOutput, error) {
	if len(input.AccountIDs) == 0 {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeEmptyAccountIDs,
			"account IDs list cannot be empty",
			domainerror.ErrEmptyAccountIDs,
		)
	}

	deletedCount, err := uc.accountRepo.BulkDelete(ctx, input.AccountIDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete accounts: %w", err)
	}
	if deletedCount > 0 {
		summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)
	}

	return &BulkDeleteAccountsOutput{DeletedCount: deletedCount}, nil
}
