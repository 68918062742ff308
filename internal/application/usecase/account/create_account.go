// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name   string
	UserID string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

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

	account := entity.NewAccount(name, input.UserID)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}
	if len(name) > entity.MaxAccountNameLength {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", entity.MaxAccountNameLength),
			domainerror.ErrAccountNameTooLong,
		)
	}
	return nil
}
