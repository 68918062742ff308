package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase       *account.ListAccountsUseCase
	getUseCase        *account.GetAccountUseCase
	createUseCase     *account.CreateAccountUseCase
	updateUseCase     *account.UpdateAccountUseCase
	deleteUseCase     *account.DeleteAccountUseCase
	bulkDeleteUseCase *account.BulkDeleteAccountsUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	getUseCase *account.GetAccountUseCase,
	createUseCase *account.CreateAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
	bulkDeleteUseCase *account.BulkDeleteAccountsUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToAccountListResponse(output.Accounts)})
}

// Get handles GET /accounts/:id requests.
func (c *AccountController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "account")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), account.GetAccountInput{
		AccountID: accountID,
		UserID:    userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToAccountResponse(output.Account)})
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		Name:   req.Name,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToAccountResponse(output.Account)})
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "account")
	if !ok {
		return
	}

	var req dto.AccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), account.UpdateAccountInput{
		AccountID: accountID,
		UserID:    userID,
		Name:      req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToAccountResponse(output.Account)})
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	accountID, ok := parseIDParam(ctx, "account")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{
		AccountID: accountID,
		UserID:    userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToAccountResponse(output.Account)})
}

// BulkDelete handles POST /accounts/bulk-delete requests.
func (c *AccountController) BulkDelete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), account.BulkDeleteAccountsInput{
		AccountIDs: parseIDs(req.IDs),
		UserID:     userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.BulkDeleteResponse{DeletedCount: output.DeletedCount}})
}
