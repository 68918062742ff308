package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// BulkDeleteCategoriesInput represents the input for bulk category deletion.
type BulkDeleteCategoriesInput struct {
	CategoryIDs []uuid.UUID
	UserID      string
}

// BulkDeleteCategoriesOutput represents the output of bulk category deletion.
type BulkDeleteCategoriesOutput struct {
	DeletedCount int64
}

// BulkDeleteCategoriesUseCase handles bulk category deletion.
type BulkDeleteCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	summaryCache adapter.SummaryCache
}

// NewBulkDeleteCategoriesUseCase creates a new BulkDeleteCategoriesUseCase instance.
func NewBulkDeleteCategoriesUseCase(categoryRepo adapter.CategoryRepository, summaryCache adapter.SummaryCache) *BulkDeleteCategoriesUseCase {
	return &BulkDeleteCategoriesUseCase{
		categoryRepo: categoryRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the bulk category deletion. IDs not owned by the user are skipped.
func (uc *BulkDeleteCategoriesUseCase) Execute(ctx context.Context, input BulkDeleteCategoriesInput) (*BulkDeleteCategoriesOutput, error) {
	if len(input.CategoryIDs) == 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryIDs,
			"category IDs list cannot be empty",
			domainerror.ErrEmptyCategoryIDs,
		)
	}

	deletedCount, err := uc.categoryRepo.BulkDelete(ctx, input.CategoryIDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete categories: %w", err)
	}
	if deletedCount > 0 {
		summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)
	}

	return &BulkDeleteCategoriesOutput{
		DeletedCount: deletedCount,
	}, nil
}
