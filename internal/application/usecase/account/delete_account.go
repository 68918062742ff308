package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID uuid.UUID
	UserID    string
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Account *entity.Account
}

// DeleteAccountUseCase handles deleting an account together with its transactions.
type DeleteAccountUseCase struct {
	accountRepo  adapter.AccountRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository, summaryCache adapter.SummaryCache) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:  accountRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	account, err := findOwned(ctx, uc.accountRepo, input.AccountID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Delete(ctx, account.ID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}
	summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)

	return &DeleteAccountOutput{Account: account}, nil
}
