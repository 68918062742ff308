package db

import (
	"testing"

	"github.com/finance-tracker/ledger/config"
)

func TestNewConnection(t *testing.T) {
	t.Run("opens an in-memory sqlite database", func(t *testing.T) {
		database, err := NewConnection(&config.DatabaseConfig{
			Driver: DriverSQLite,
			URL:    "file::memory:",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = database.Close() }()

		if !database.HealthCheck() {
			t.Error("expected the database to be healthy")
		}

		type probe struct {
			ID   uint
			Name string
		}
		if err := database.AutoMigrate(&probe{}); err != nil {
			t.Fatalf("unexpected migration error: %v", err)
		}
		if !database.DB().Migrator().HasTable(&probe{}) {
			t.Error("expected the probe table to exist")
		}
	})

	t.Run("rejects unknown drivers", func(t *testing.T) {
		if _, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
			t.Error("expected an error for an unsupported driver")
		}
	})
}
