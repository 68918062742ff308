package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdateAccountInput represents the input for account update.
type UpdateAccountInput struct {
	AccountID uuid.UUID
	UserID    string
	Name      string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles renaming an account.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	account, err := findOwned(ctx, uc.accountRepo, input.AccountID, input.UserID)
	if err != nil {
		return nil, err
	}

	if name != account.Name {
		exists, err := uc.accountRepo.ExistsByNameAndUser(ctx, name, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check account name existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameExists,
				"an account with this name already exists",
				domainerror.ErrAccountNameExists,
			)
		}
	}

	account.Name = name
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
