package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase       *transaction.ListTransactionsUseCase
	getUseCase        *transaction.GetTransactionUseCase
	createUseCase     *transaction.CreateTransactionUseCase
	bulkCreateUseCase *transaction.BulkCreateTransactionsUseCase
	updateUseCase     *transaction.UpdateTransactionUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
	bulkDeleteUseCase *transaction.BulkDeleteTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	bulkCreateUseCase *transaction.BulkCreateTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	bulkDeleteUseCase *transaction.BulkDeleteTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		createUseCase:     createUseCase,
		bulkCreateUseCase: bulkCreateUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "from and to must be dates in dd-MM-yyyy format and accountId a valid ID",
			Code:    string(domainerror.ErrCodeInvalidTransactionDate),
			Details: err.Error(),
		})
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		From:   query.From,
		To:     query.To,
	}
	if query.AccountID != "" {
		accountID := uuid.MustParse(query.AccountID)
		input.AccountID = &accountID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToTransactionListResponse(output)})
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToTransactionResponse(output.Transaction)})
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	data, ok := bindTransaction(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID: userID,
		Data:   data,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToTransactionResponse(output.Transaction)})
}

// BulkCreate handles POST /transactions/bulk-create requests.
func (c *TransactionController) BulkCreate(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.BulkCreateTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	transactions := make([]transaction.TransactionData, len(req.Transactions))
	for i := range req.Transactions {
		data, err := req.Transactions[i].ToData()
		if err != nil {
			respondConversionError(ctx, fmt.Errorf("transaction %d: %w", i+1, err))
			return
		}
		transactions[i] = data
	}

	output, err := c.bulkCreateUseCase.Execute(ctx.Request.Context(), transaction.BulkCreateTransactionsInput{
		UserID:       userID,
		Transactions: transactions,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DataResponse{Data: dto.ToBulkCreateTransactionsResponse(output.Transactions)})
}

// Update handles PATCH /transactions/:id requests. The body replaces every field.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	data, ok := bindTransaction(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Data:          data,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToTransactionResponse(output.Transaction)})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseIDParam(ctx, "transaction")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: gin.H{"id": output.Transaction.ID.String()}})
}

// BulkDelete handles POST /transactions/bulk-delete requests.
func (c *TransactionController) BulkDelete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), transaction.BulkDeleteTransactionsInput{
		TransactionIDs: parseIDs(req.IDs),
		UserID:         userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.BulkDeleteResponse{DeletedCount: output.DeletedCount}})
}

func bindTransaction(ctx *gin.Context) (transaction.TransactionData, bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return transaction.TransactionData{}, false
	}
	data, err := req.ToData()
	if err != nil {
		respondConversionError(ctx, err)
		return transaction.TransactionData{}, false
	}
	return data, true
}

// respondConversionError answers coded domain errors with their own status and code.
func respondConversionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		handleError(ctx, err)
		return
	}
	respondInvalidBody(ctx, err)
}
