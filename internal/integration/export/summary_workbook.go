// Package export renders reporting data into downloadable files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// WorkbookContentType is the MIME type of the files written by WriteSummaryWorkbook.
const WorkbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of the summary workbook.
const (
	SheetTotals     = "Summary"
	SheetCategories = "Categories"
	SheetDays       = "Days"
)

// WriteSummaryWorkbook writes the summary as an xlsx workbook with a totals sheet,
// a category sheet and a daily sheet. Amounts are written in currency units.
func WriteSummaryWorkbook(w io.Writer, summary *reporting.Summary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetTotals); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetCategories); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetDays); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	totals := [][]interface{}{
		{"From", valueobject.FormatDate(summary.Period.Start)},
		{"To", valueobject.FormatDate(summary.Period.End)},
		{},
		{"Metric", "Amount", "Change (%)"},
		{"Income", amount(summary.IncomeAmount), summary.IncomeChange},
		{"Expenses", amount(summary.ExpensesAmount), summary.ExpensesChange},
		{"Remaining", amount(summary.RemainingAmount), summary.RemainingChange},
	}
	if err := writeRows(f, SheetTotals, totals); err != nil {
		return err
	}

	categories := [][]interface{}{{"Category", "Amount"}}
	for _, c := range summary.Categories {
		categories = append(categories, []interface{}{c.Name, amount(c.Value)})
	}
	if err := writeRows(f, SheetCategories, categories); err != nil {
		return err
	}

	days := [][]interface{}{{"Date", "Income", "Expenses"}}
	for _, d := range summary.Days {
		days = append(days, []interface{}{valueobject.FormatDate(d.Date), amount(d.Income), amount(d.Expenses)})
	}
	if err := writeRows(f, SheetDays, days); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func amount(miliunits int64) float64 {
	return valueobject.MiliunitsToDecimal(miliunits).InexactFloat64()
}
