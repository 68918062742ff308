// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

const (
	// MaxPayeeLength is the maximum length of a transaction payee.
	MaxPayeeLength = 255

	// MaxNotesLength is the maximum length of transaction notes.
	MaxNotesLength = 1000
)

// Transaction represents a single ledger entry on an account.
// Amount is expressed in miliunits: non-negative for income, negative for expenses.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID // Optional, can be uncategorized
	Date       time.Time  // Calendar day at UTC midnight
	Amount     int64
	Payee      string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	date time.Time,
	amount int64,
	payee string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		AccountID:  accountID,
		CategoryID: categoryID,
		Date:       valueobject.TruncateToDay(date),
		Amount:     amount,
		Payee:      payee,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsExpense reports whether the transaction takes money out of the account.
func (t *Transaction) IsExpense() bool {
	return t.Amount < 0
}

// TransactionDetails is a transaction joined with its account and category names.
type TransactionDetails struct {
	Transaction  *Transaction
	AccountName  string
	CategoryName *string
}

// TransactionFilter narrows a transaction listing for one user.
type TransactionFilter struct {
	UserID    string
	AccountID *uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}
