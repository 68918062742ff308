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

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(model.AccountFromEntity(account)).Error
}

// FindByIDAndUser retrieves an account owned by the user.
func (r *accountRepository) FindByIDAndUser(ctx context.Context, id uuid.UUID, userID string) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByUser retrieves all accounts owned by the user.
func (r *accountRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// ExistsByNameAndUser checks if the user already has an account with the given name.
func (r *accountRepository) ExistsByNameAndUser(ctx context.Context, name string, userID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("name = ? AND user_id = ?", name, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Save(model.AccountFromEntity(account)).Error
}

// Delete soft-deletes an account together with its transactions.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.AccountModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrAccountNotFound
		}
		return tx.Where("account_id = ?", id).Delete(&model.TransactionModel{}).Error
	})
}

// BulkDelete soft-deletes the user's accounts among ids together with their transactions.
func (r *accountRepository) BulkDelete(ctx context.Context, ids []uuid.UUID, userID string) (int64, error) {
	var deletedCount int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned []uuid.UUID
		if err := tx.Model(&model.AccountModel{}).
			Where("id IN ? AND user_id = ?", ids, userID).
			Pluck("id", &owned).Error; err != nil {
			return err
		}
		if len(owned) == 0 {
			return nil
		}

		if err := tx.Where("account_id IN ?", owned).Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", owned).Delete(&model.AccountModel{})
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
