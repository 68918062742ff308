package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/ledger/internal/domain/reporting"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

func TestWriteSummaryWorkbook(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	summary := &reporting.Summary{
		Period:          valueobject.NewPeriod(start, start.AddDate(0, 0, 1)),
		RemainingAmount: 2500,
		RemainingChange: -50,
		IncomeAmount:    10000,
		IncomeChange:    100,
		ExpensesAmount:  -7500,
		ExpensesChange:  25,
		Categories: []reporting.CategoryShare{
			{Name: "Rent", Value: 5000},
			{Name: "Food", Value: 2500},
		},
		Days: []reporting.DailyPoint{
			{Date: start, Income: 10000, Expenses: -7500},
			{Date: start.AddDate(0, 0, 1)},
		},
	}

	var buf bytes.Buffer
	if err := WriteSummaryWorkbook(&buf, summary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != SheetTotals || sheets[1] != SheetCategories || sheets[2] != SheetDays {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	cells := []struct {
		sheet string
		cell  string
		want  string
	}{
		{SheetTotals, "B1", "01-03-2024"},
		{SheetTotals, "B2", "02-03-2024"},
		{SheetTotals, "A5", "Income"},
		{SheetTotals, "B5", "10"},
		{SheetTotals, "B6", "-7.5"},
		{SheetTotals, "C7", "-50"},
		{SheetCategories, "A2", "Rent"},
		{SheetCategories, "B3", "2.5"},
		{SheetDays, "A3", "02-03-2024"},
		{SheetDays, "B3", "0"},
	}
	for _, c := range cells {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("failed to read %s!%s: %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s: expected %q, got %q", c.sheet, c.cell, c.want, got)
		}
	}

	rows, err := f.GetRows(SheetDays)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected header plus 2 days, got %d rows", len(rows))
	}
}
