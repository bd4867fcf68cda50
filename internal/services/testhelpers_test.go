package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/staynest/staynest-backend/internal/database"
	"github.com/staynest/staynest-backend/internal/models"
	"github.com/staynest/staynest-backend/internal/policy"
)

var testDBSeq atomic.Int64

// openTestDB spins up an isolated in-memory SQLite database with the full
// schema. TranslateError is on, as in production, so duplicate-key failures
// surface as gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Email:     email,
		Password:  "x",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedProperty(t *testing.T, db *gorm.DB, host *models.User, pricePerNight string) *models.Property {
	t.Helper()
	property := &models.Property{
		HostID:        host.ID,
		Name:          "Loft near the river",
		Description:   "Two rooms, one view",
		Location:      "Lisbon",
		PricePerNight: decimal.RequireFromString(pricePerNight),
	}
	if err := db.Create(property).Error; err != nil {
		t.Fatalf("seed property: %v", err)
	}
	return property
}

func actorFor(u *models.User) policy.Actor {
	return policy.Actor{ID: u.ID, Email: u.Email, Role: u.Role, Authenticated: true}
}
