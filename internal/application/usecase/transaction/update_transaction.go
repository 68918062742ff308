package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
// All editable fields are replaced.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        string
	Data          TransactionData
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionDetails
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := findOwned(ctx, uc.transactionRepo, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	checker := newOwnershipChecker(uc.accountRepo, uc.categoryRepo, input.UserID)
	data := input.Data
	accountName, categoryName, err := checker.details(ctx, &data)
	if err != nil {
		return nil, err
	}

	transaction := existing.Transaction
	transaction.AccountID = data.AccountID
	transaction.CategoryID = data.CategoryID
	transaction.Date = valueobject.TruncateToDay(data.Date)
	transaction.Amount = data.Amount
	transaction.Payee = data.Payee
	transaction.Notes = data.Notes
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: &entity.TransactionDetails{
			Transaction:  transaction,
			AccountName:  accountName,
			CategoryName: categoryName,
		},
	}, nil
}
