package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRequest represents the request body for category creation and rename.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories to their DTOs.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = ToCategoryResponse(category)
	}
	return response
}
