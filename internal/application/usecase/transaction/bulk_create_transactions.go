package transaction

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxBulkCreateSize bounds the number of transactions imported in one request.
const MaxBulkCreateSize = 1000

// BulkCreateTransactionsInput represents the input for importing transactions.
type BulkCreateTransactionsInput struct {
	UserID       string
	Transactions []TransactionData
}

// BulkCreateTransactionsOutput represents the output of importing transactions.
type BulkCreateTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// BulkCreateTransactionsUseCase imports a batch of transactions atomically.
// A single invalid row rejects the whole batch.
type BulkCreateTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	summaryCache    adapter.SummaryCache
}

// NewBulkCreateTransactionsUseCase creates a new BulkCreateTransactionsUseCase instance.
func NewBulkCreateTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	summaryCache adapter.SummaryCache,
) *BulkCreateTransactionsUseCase {
	return &BulkCreateTransactionsUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		summaryCache:    summaryCache,
	}
}

// Execute performs the import.
func (uc *BulkCreateTransactionsUseCase) Execute(ctx context.Context, input BulkCreateTransactionsInput) (*BulkCreateTransactionsOutput, error) {
	if len(input.Transactions) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionBatch,
			"transactions list cannot be empty",
			domainerror.ErrEmptyTransactionBatch,
		)
	}
	if len(input.Transactions) > MaxBulkCreateSize {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionBatchTooLarge,
			fmt.Sprintf("at most %d transactions can be imported at once", MaxBulkCreateSize),
			domainerror.ErrTransactionBatchTooLarge,
		)
	}

	checker := newOwnershipChecker(uc.accountRepo, uc.categoryRepo, input.UserID)
	transactions := make([]*entity.Transaction, 0, len(input.Transactions))
	for i := range input.Transactions {
		data := input.Transactions[i]
		if _, _, err := checker.details(ctx, &data); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		transactions = append(transactions, entity.NewTransaction(
			data.AccountID,
			data.CategoryID,
			data.Date,
			data.Amount,
			data.Payee,
			data.Notes,
		))
	}

	if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to create transactions: %w", err)
	}
	summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)

	return &BulkCreateTransactionsOutput{
		Transactions: transactions,
	}, nil
}
