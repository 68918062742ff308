// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	CategoryID *uuid.UUID     `gorm:"type:uuid;index"`
	Date       time.Time      `gorm:"type:date;not null;index"`
	Amount     int64          `gorm:"type:bigint;not null"` // miliunits
	Payee      string         `gorm:"type:varchar(255);not null"`
	Notes      string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"not null"`
	UpdatedAt  time.Time      `gorm:"not null"`
	DeletedAt  gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:         m.ID,
		AccountID:  m.AccountID,
		CategoryID: m.CategoryID,
		Date:       m.Date.UTC(),
		Amount:     m.Amount,
		Payee:      m.Payee,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:         transaction.ID,
		AccountID:  transaction.AccountID,
		CategoryID: transaction.CategoryID,
		Date:       transaction.Date,
		Amount:     transaction.Amount,
		Payee:      transaction.Payee,
		Notes:      transaction.Notes,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// TransactionDetailsRow is a transaction joined with its account and category names.
type TransactionDetailsRow struct {
	ID           uuid.UUID  `gorm:"column:id"`
	AccountID    uuid.UUID  `gorm:"column:account_id"`
	CategoryID   *uuid.UUID `gorm:"column:category_id"`
	Date         time.Time  `gorm:"column:date"`
	Amount       int64      `gorm:"column:amount"`
	Payee        string     `gorm:"column:payee"`
	Notes        string     `gorm:"column:notes"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
	AccountName  string     `gorm:"column:account_name"`
	CategoryName *string    `gorm:"column:category_name"`
}

// ToEntity converts a TransactionDetailsRow to domain TransactionDetails.
func (r *TransactionDetailsRow) ToEntity() *entity.TransactionDetails {
	return &entity.TransactionDetails{
		Transaction: &entity.Transaction{
			ID:         r.ID,
			AccountID:  r.AccountID,
			CategoryID: r.CategoryID,
			Date:       r.Date.UTC(),
			Amount:     r.Amount,
			Payee:      r.Payee,
			Notes:      r.Notes,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		},
		AccountName:  r.AccountName,
		CategoryName: r.CategoryName,
	}
}
