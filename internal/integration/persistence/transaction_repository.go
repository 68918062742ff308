// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// createBatchSize bounds the rows per INSERT statement when importing transactions.
const createBatchSize = 100

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates several transactions in a single database transaction.
func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []*entity.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	models := make([]*model.TransactionModel, len(transactions))
	for i, transaction := range transactions {
		models[i] = model.TransactionFromEntity(transaction)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(models, createBatchSize).Error
	})
}

// FindByIDAndUser retrieves a transaction with its account and category names.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.TransactionDetails, error) {
	var row model.TransactionDetailsRow
	result := r.detailsQuery(ctx, userID).
		Where("t.id = ?", id).
		Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return row.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter entity.TransactionFilter) ([]*entity.TransactionDetails, error) {
	query := r.detailsQuery(ctx, filter.UserID).
		Where("t.date >= ? AND t.date <= ?", filter.StartDate, filter.EndDate)
	if filter.AccountID != nil {
		query = query.Where("t.account_id = ?", *filter.AccountID)
	}

	var rows []model.TransactionDetailsRow
	if err := query.Order("t.date DESC, t.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.TransactionDetails, len(rows))
	for i := range rows {
		transactions[i] = rows[i].ToEntity()
	}
	return transactions, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a transaction visible to the user.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND account_id IN (?)", id, r.ownedAccounts(ctx, userID)).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// BulkDelete soft-deletes the user's transactions among ids.
func (r *transactionRepository) BulkDelete(ctx context.Context, ids []uuid.UUID, userID string) (int64, error) {
	// Use transaction to ensure atomicity
	var deletedCount int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id IN ? AND account_id IN (?)", ids, r.ownedAccounts(ctx, userID)).
			Delete(&model.TransactionModel{})
		if result.Error != nil {
			return result.Error
		}
		deletedCount = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deletedCount, nil
}

// detailsQuery selects live transactions of the user's live accounts joined with display names.
func (r *transactionRepository) detailsQuery(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("transactions AS t").
		Select(`t.id, t.account_id, t.category_id, t.date, t.amount, t.payee, t.notes,
			t.created_at, t.updated_at, a.name AS account_name, c.name AS category_name`).
		Joins("JOIN accounts a ON a.id = t.account_id AND a.deleted_at IS NULL").
		Joins("LEFT JOIN categories c ON c.id = t.category_id AND c.deleted_at IS NULL").
		Where("t.deleted_at IS NULL AND a.user_id = ?", userID)
}

// ownedAccounts is a subquery selecting the IDs of the user's live accounts.
func (r *transactionRepository) ownedAccounts(ctx context.Context, userID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("id").
		Where("user_id = ?", userID)
}
