package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// AccountRequest represents the request body for account creation and rename.
type AccountRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToAccountListResponse converts accounts to their DTOs.
func ToAccountListResponse(accounts []*entity.Account) []AccountResponse {
	response := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = ToAccountResponse(account)
	}
	return response
}
