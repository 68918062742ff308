package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// GetTransactionInput represents the input for fetching one transaction.
type GetTransactionInput struct {
	TransactionID uuid.UUID
	UserID        string
}

// GetTransactionOutput represents the output of fetching one transaction.
type GetTransactionOutput struct {
	Transaction *entity.TransactionDetails
}

// GetTransactionUseCase handles fetching a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the transaction.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	details, err := findOwned(ctx, uc.transactionRepo, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetTransactionOutput{Transaction: details}, nil
}

func findOwned(ctx context.Context, repo adapter.TransactionRepository, id uuid.UUID, userID string) (*entity.TransactionDetails, error) {
	details, err := repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return details, nil
}
