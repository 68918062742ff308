package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     string
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Category *entity.Category
}

// DeleteCategoryUseCase handles category deletion logic.
// Transactions of the category become uncategorized.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, summaryCache adapter.SummaryCache) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	category, err := findOwned(ctx, uc.categoryRepo, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	summary.InvalidateCache(ctx, uc.summaryCache, input.UserID)

	return &DeleteCategoryOutput{
		Category: category,
	}, nil
}
