package controller

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/summary"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/ledger/internal/integration/export"
)

// SummaryController handles the dashboard summary endpoints.
type SummaryController struct {
	getSummaryUseCase *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getSummaryUseCase *summary.GetSummaryUseCase) *SummaryController {
	return &SummaryController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// Get handles GET /summary requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	output, ok := c.compute(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{Data: dto.ToSummaryResponse(output.Summary)})
}

// Export handles GET /summary/export requests with an xlsx attachment.
func (c *SummaryController) Export(ctx *gin.Context) {
	output, ok := c.compute(ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSummaryWorkbook(&buf, output.Summary); err != nil {
		handleError(ctx, err)
		return
	}

	period := output.Summary.Period
	filename := fmt.Sprintf("summary_%s_%s.xlsx",
		period.Start.Format("20060102"),
		period.End.Format("20060102"),
	)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, export.WorkbookContentType, buf.Bytes())
}

func (c *SummaryController) compute(ctx *gin.Context) (*summary.GetSummaryOutput, bool) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return nil, false
	}

	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "from and to must be dates in dd-MM-yyyy format and accountId a valid ID",
			Code:    string(domainerror.ErrCodeInvalidDateFormat),
			Details: err.Error(),
		})
		return nil, false
	}

	input := summary.GetSummaryInput{
		UserID: userID,
		From:   query.From,
		To:     query.To,
	}
	if query.AccountID != "" {
		accountID := uuid.MustParse(query.AccountID)
		input.AccountID = &accountID
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return output, true
}
