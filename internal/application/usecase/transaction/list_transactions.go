package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// ListTransactionsInput represents the input for listing transactions.
// From and To are optional dd-MM-yyyy dates.
type ListTransactionsInput struct {
	UserID    string
	AccountID *uuid.UUID
	From      string
	To        string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionDetails
	Period       valueobject.Period
	Totals       reporting.PeriodAggregate
}

// ListTransactionsUseCase handles listing transactions for a period.
type ListTransactionsUseCase struct {
	transactionRepo   adapter.TransactionRepository
	defaultWindowDays int
	now               func() time.Time
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	defaultWindowDays int,
	now func() time.Time,
) *ListTransactionsUseCase {
	if now == nil {
		now = time.Now
	}
	return &ListTransactionsUseCase{
		transactionRepo:   transactionRepo,
		defaultWindowDays: defaultWindowDays,
		now:               now,
	}
}

// Execute retrieves the transactions of the period, newest first, with their totals.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	period, err := valueobject.ResolvePeriod(input.From, input.To, uc.now().UTC(), uc.defaultWindowDays)
	if err != nil {
		message := "from and to must be dates in dd-MM-yyyy format"
		if errors.Is(err, valueobject.ErrPeriodTooLong) {
			message = fmt.Sprintf("period must not exceed %d days", valueobject.MaxPeriodDays)
		}
		return nil, domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionDate, message, domainerror.ErrInvalidTransactionDate)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, entity.TransactionFilter{
		UserID:    input.UserID,
		AccountID: input.AccountID,
		StartDate: period.Start,
		EndDate:   period.End,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []*entity.TransactionDetails{}
	}

	amounts := make([]int64, len(transactions))
	for i, details := range transactions {
		amounts[i] = details.Transaction.Amount
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Period:       period,
		Totals:       reporting.AggregatePeriod(amounts),
	}, nil
}
