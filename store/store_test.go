package store

import (
	"os"
	"testing"

	"github.com/DAQEM/fakestore/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// testDB connects to the database named by TEST_DATABASE_URL, migrates the
// schema and empties the tables. Tests needing a real store are skipped when
// the variable is unset.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping DB-backed store tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("connect test DB: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("migrate test DB: %v", err)
	}

	for _, table := range []string{"cart_items", "carts", "products", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean table %s: %v", table, err)
		}
	}
	return db
}
