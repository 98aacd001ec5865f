// Package testutil provides an in-memory database and fixtures for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/turf-booking/internal/db"
	"github.com/BruksfildServices01/turf-booking/internal/domain/account"
	"github.com/BruksfildServices01/turf-booking/internal/models"
)

// NewDB opens a private in-memory SQLite database with the full schema.
// Foreign keys are enforced so cascade rules behave as in Postgres.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		uuid.NewString(),
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// Password is the plain password of every fixture user.
const Password = "secret123"

func CreateUser(t *testing.T, db *gorm.DB, username string, isOwner bool) *models.User {
	t.Helper()

	hash, err := account.HashPassword(Password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsOwner:      isOwner,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func CreateTurf(t *testing.T, db *gorm.DB, ownerID uint, name, city string, price float64) *models.Turf {
	t.Helper()

	turf := &models.Turf{
		OwnerID:      ownerID,
		Name:         name,
		City:         city,
		PricePerHour: price,
	}
	if err := db.Create(turf).Error; err != nil {
		t.Fatalf("create turf %s: %v", name, err)
	}
	return turf
}

func CreateSlot(t *testing.T, db *gorm.DB, turfID uint, date, start, end string) *models.Slot {
	t.Helper()

	s := &models.Slot{
		TurfID:    turfID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("create slot %s %s-%s: %v", date, start, end, err)
	}
	return s
}

func ReloadSlot(t *testing.T, db *gorm.DB, id uint) *models.Slot {
	t.Helper()

	var s models.Slot
	if err := db.First(&s, id).Error; err != nil {
		t.Fatalf("reload slot %d: %v", id, err)
	}
	return &s
}

func CountBookings(t *testing.T, db *gorm.DB, where string, args ...any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(&models.Booking{}).Where(where, args...).Count(&n).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	return n
}
