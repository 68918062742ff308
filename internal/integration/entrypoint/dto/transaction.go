package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionRequest represents the request body for transaction creation and update.
// Amount is a decimal currency amount; negative values are expenses.
type TransactionRequest struct {
	AccountID  string           `json:"accountId" binding:"required,uuid"`
	CategoryID *string          `json:"categoryId" binding:"omitempty,uuid"`
	Date       string           `json:"date" binding:"required,ddmmyyyy"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	Payee      string           `json:"payee" binding:"required,max=255"`
	Notes      string           `json:"notes" binding:"max=1000"`
}

// BulkCreateTransactionsRequest represents the request body for importing transactions.
type BulkCreateTransactionsRequest struct {
	Transactions []TransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// ToData converts the request to use case input. Binding has already checked the formats.
func (r *TransactionRequest) ToData() (transaction.TransactionData, error) {
	accountID, err := uuid.Parse(r.AccountID)
	if err != nil {
		return transaction.TransactionData{}, err
	}
	var categoryID *uuid.UUID
	if r.CategoryID != nil && *r.CategoryID != "" {
		id, err := uuid.Parse(*r.CategoryID)
		if err != nil {
			return transaction.TransactionData{}, err
		}
		categoryID = &id
	}
	date, err := valueobject.ParseDate(r.Date)
	if err != nil {
		return transaction.TransactionData{}, err
	}
	amount, err := valueobject.MiliunitsFromDecimal(*r.Amount)
	if err != nil {
		return transaction.TransactionData{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount is out of range",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return transaction.TransactionData{
		AccountID:  accountID,
		CategoryID: categoryID,
		Date:       date,
		Amount:     amount,
		Payee:      r.Payee,
		Notes:      r.Notes,
	}, nil
}

// TransactionResponse represents a single transaction in API responses.
// Amount is in miliunits.
type TransactionResponse struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	Amount     int64     `json:"amount"`
	Payee      string    `json:"payee"`
	Notes      string    `json:"notes"`
	AccountID  string    `json:"accountId"`
	Account    string    `json:"account"`
	CategoryID *string   `json:"categoryId"`
	Category   *string   `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TotalsResponse holds the aggregate of a transaction list.
type TotalsResponse struct {
	Income    int64 `json:"income"`
	Expenses  int64 `json:"expenses"`
	Remaining int64 `json:"remaining"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	From         string                `json:"from"`
	To           string                `json:"to"`
	Totals       TotalsResponse        `json:"totals"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts transaction details to a TransactionResponse DTO.
func ToTransactionResponse(details *entity.TransactionDetails) TransactionResponse {
	txn := details.Transaction
	var categoryID *string
	if txn.CategoryID != nil {
		id := txn.CategoryID.String()
		categoryID = &id
	}
	return TransactionResponse{
		ID:         txn.ID.String(),
		Date:       valueobject.FormatDate(txn.Date),
		Amount:     txn.Amount,
		Payee:      txn.Payee,
		Notes:      txn.Notes,
		AccountID:  txn.AccountID.String(),
		Account:    details.AccountName,
		CategoryID: categoryID,
		Category:   details.CategoryName,
		CreatedAt:  txn.CreatedAt,
		UpdatedAt:  txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts the list use case output to its DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, details := range output.Transactions {
		transactions[i] = ToTransactionResponse(details)
	}
	return TransactionListResponse{
		From: valueobject.FormatDate(output.Period.Start),
		To:   valueobject.FormatDate(output.Period.End),
		Totals: TotalsResponse{
			Income:    output.Totals.Income,
			Expenses:  output.Totals.Expenses,
			Remaining: output.Totals.Remaining,
		},
		Transactions: transactions,
	}
}

// BulkCreateTransactionsResponse represents the result of an import.
type BulkCreateTransactionsResponse struct {
	CreatedCount int      `json:"createdCount"`
	IDs          []string `json:"ids"`
}

// ToBulkCreateTransactionsResponse converts imported transactions to their DTO.
func ToBulkCreateTransactionsResponse(transactions []*entity.Transaction) BulkCreateTransactionsResponse {
	ids := make([]string, len(transactions))
	for i, txn := range transactions {
		ids[i] = txn.ID.String()
	}
	return BulkCreateTransactionsResponse{
		CreatedCount: len(transactions),
		IDs:          ids,
	}
}
