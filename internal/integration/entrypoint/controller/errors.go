package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// requireUserID returns the authenticated user ID or answers 401.
func requireUserID(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return "", false
	}
	return userID, true
}

// parseIDParam parses the :id path parameter or answers 400.
func parseIDParam(ctx *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + resource + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseIDs parses IDs already validated by binding.
func parseIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, value := range values {
		if id, err := uuid.Parse(value); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Details: err.Error(),
	})
}

// handleError maps domain errors to HTTP responses. Anything else is logged and answered with 500.
func handleError(ctx *gin.Context, err error) {
	var (
		accErr *domainerror.AccountError
		catErr *domainerror.CategoryError
		txnErr *domainerror.TransactionError
		sumErr *domainerror.SummaryError
	)

	switch {
	case errors.As(err, &accErr):
		ctx.JSON(accountErrorStatus(accErr.Code), dto.ErrorResponse{Error: accErr.Message, Code: string(accErr.Code)})
	case errors.As(err, &catErr):
		ctx.JSON(categoryErrorStatus(catErr.Code), dto.ErrorResponse{Error: catErr.Message, Code: string(catErr.Code)})
	case errors.As(err, &txnErr):
		ctx.JSON(transactionErrorStatus(txnErr.Code), dto.ErrorResponse{Error: txnErr.Message, Code: string(txnErr.Code)})
	case errors.As(err, &sumErr):
		ctx.JSON(summaryErrorStatus(sumErr.Code), dto.ErrorResponse{Error: sumErr.Message, Code: string(sumErr.Code)})
	default:
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func accountErrorStatus(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAccountNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeAccountNameRequired,
		domainerror.ErrCodeAccountNameTooLong,
		domainerror.ErrCodeEmptyAccountIDs:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func categoryErrorStatus(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeEmptyCategoryIDs:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func transactionErrorStatus(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTxnAccountNotFound,
		domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodePayeeRequired,
		domainerror.ErrCodePayeeTooLong,
		domainerror.ErrCodeNotesTooLong,
		domainerror.ErrCodeEmptyTransactionIDs,
		domainerror.ErrCodeEmptyTransactionBatch,
		domainerror.ErrCodeTransactionBatchTooLarge:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func summaryErrorStatus(code domainerror.SummaryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
