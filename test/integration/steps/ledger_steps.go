//go:build integration

package steps

import (
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// todayIs pins the server clock to noon of the given dd-MM-yyyy day.
func (t *testContext) todayIs(date string) error {
	day, err := valueobject.ParseDate(date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *testContext) iAmAuthenticatedAs(userID string) error {
	token, err := adapters.SignToken(testJWTSecret, "", userID, t.timeMock.Now(), time.Hour)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	t.userID = userID
	t.accessToken = token
	return nil
}

func (t *testContext) myTokenHasExpired() error {
	if t.userID == "" {
		return fmt.Errorf("no authenticated user")
	}
	token, err := adapters.SignToken(testJWTSecret, "", t.userID, t.timeMock.Now().Add(-2*time.Hour), time.Hour)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) anAccountExists(name string) error {
	if t.userID == "" {
		return fmt.Errorf("no authenticated user")
	}
	return t.anAccountExistsFor(name, t.userID)
}

func (t *testContext) anAccountExistsFor(name, userID string) error {
	now := t.timeMock.Now().UTC()
	account := &model.AccountModel{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(account).Error; err != nil {
		return err
	}
	t.accountIDs[name] = account.ID
	return nil
}

func (t *testContext) aCategoryExists(name string) error {
	if t.userID == "" {
		return fmt.Errorf("no authenticated user")
	}
	now := t.timeMock.Now().UTC()
	category := &model.CategoryModel{
		ID:        uuid.New(),
		Name:      name,
		UserID:    t.userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(category).Error; err != nil {
		return err
	}
	t.categoryIDs[name] = category.ID
	return nil
}

// theFollowingTransactionsExistIn reads a table with the columns
// date | amount | payee and an optional category.
func (t *testContext) theFollowingTransactionsExistIn(accountName string, table *godog.Table) error {
	accountID, ok := t.accountIDs[accountName]
	if !ok {
		return fmt.Errorf("account %q was not created", accountName)
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("transactions table has no rows")
	}

	columns := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	for _, required := range []string{"date", "amount", "payee"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("transactions table is missing the %q column", required)
		}
	}

	now := t.timeMock.Now().UTC()
	for _, row := range table.Rows[1:] {
		value := func(column string) string {
			i, ok := columns[column]
			if !ok {
				return ""
			}
			return row.Cells[i].Value
		}

		date, err := valueobject.ParseDate(value("date"))
		if err != nil {
			return err
		}
		decimalAmount, err := decimal.NewFromString(value("amount"))
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", value("amount"), err)
		}
		amount, err := valueobject.MiliunitsFromDecimal(decimalAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", value("amount"), err)
		}

		var categoryID *uuid.UUID
		if name := value("category"); name != "" {
			id, ok := t.categoryIDs[name]
			if !ok {
				return fmt.Errorf("category %q was not created", name)
			}
			categoryID = &id
		}

		transaction := &model.TransactionModel{
			ID:         uuid.New(),
			AccountID:  accountID,
			CategoryID: categoryID,
			Date:       date,
			Amount:     amount,
			Payee:      value("payee"),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := t.db.DbConn.Create(transaction).Error; err != nil {
			return err
		}
		t.transactionIDs = append(t.transactionIDs, transaction.ID)
	}
	return nil
}

// minutesPass advances both the server clock and cache expiry.
func (t *testContext) minutesPass(minutes int) error {
	elapsed := time.Duration(minutes) * time.Minute
	t.timeMock.SetCurrentTime(t.timeMock.Now().Add(elapsed))
	t.redis.FastForward(elapsed)
	return nil
}

// theSummaryCacheShouldHoldEntries counts cached summaries, ignoring generation counters.
func (t *testContext) theSummaryCacheShouldHoldEntries(quantity int) error {
	keys, err := t.redis.Keys("summary:*")
	if err != nil {
		return err
	}
	count := 0
	for _, key := range keys {
		if !strings.HasSuffix(key, ":generation") {
			count++
		}
	}
	if count != quantity {
		return fmt.Errorf("expected %d cached summaries, got %d (%v)", quantity, count, keys)
	}
	return nil
}
