package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionData carries the editable fields of a transaction.
// Amount is in miliunits.
type TransactionData struct {
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	Date       time.Time
	Amount     int64
	Payee      string
	Notes      string
}

// normalize trims free-text fields and checks their bounds.
func (d *TransactionData) normalize() error {
	d.Payee = strings.TrimSpace(d.Payee)
	d.Notes = strings.TrimSpace(d.Notes)

	if d.Payee == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodePayeeRequired,
			"payee is required",
			domainerror.ErrPayeeRequired,
		)
	}
	if len(d.Payee) > entity.MaxPayeeLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodePayeeTooLong,
			fmt.Sprintf("payee must not exceed %d characters", entity.MaxPayeeLength),
			domainerror.ErrPayeeTooLong,
		)
	}
	if len(d.Notes) > entity.MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", entity.MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	if !valueobject.ValidMiliunits(d.Amount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount is out of range",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if d.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}

// ownershipChecker resolves accounts and categories referenced by a transaction,
// memoising lookups so a batch hits the database once per distinct ID.
type ownershipChecker struct {
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	userID       string
	accounts     map[uuid.UUID]*entity.Account
	categories   map[uuid.UUID]*entity.Category
}

func newOwnershipChecker(accountRepo adapter.AccountRepository, categoryRepo adapter.CategoryRepository, userID string) *ownershipChecker {
	return &ownershipChecker{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		userID:       userID,
		accounts:     make(map[uuid.UUID]*entity.Account),
		categories:   make(map[uuid.UUID]*entity.Category),
	}
}

func (c *ownershipChecker) account(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if account, ok := c.accounts[id]; ok {
		return account, nil
	}
	account, err := c.accountRepo.FindByIDAndUser(ctx, id, c.userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	c.accounts[id] = account
	return account, nil
}

func (c *ownershipChecker) category(ctx context.Context, id *uuid.UUID) (*entity.Category, error) {
	if id == nil {
		return nil, nil
	}
	if category, ok := c.categories[*id]; ok {
		return category, nil
	}
	category, err := c.categoryRepo.FindByIDAndUser(ctx, *id, c.userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	c.categories[*id] = category
	return category, nil
}

// details validates data and resolves the names shown alongside a transaction.
func (c *ownershipChecker) details(ctx context.Context, data *TransactionData) (string, *string, error) {
	if err := data.normalize(); err != nil {
		return "", nil, err
	}
	account, err := c.account(ctx, data.AccountID)
	if err != nil {
		return "", nil, err
	}
	category, err := c.category(ctx, data.CategoryID)
	if err != nil {
		return "", nil, err
	}
	var categoryName *string
	if category != nil {
		categoryName = &category.Name
	}
	return account.Name, categoryName, nil
}

func notFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
