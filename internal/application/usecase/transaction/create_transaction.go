// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID string
	Data   TransactionData
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionDetails
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	checker := newOwnershipChecker(uc.accountRepo, uc.categoryRepo, input.UserID)

	data := input.Data
	accountName, categoryName, err := checker.details(ctx, &data)
	if err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		data.AccountID,
		data.CategoryID,
		data.Date,
		data.Amount,
		data.Payee,
		data.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionDetails{
			Transaction:  transaction,
			AccountName:  accountName,
			CategoryName: categoryName,
		},
	}, nil
}
