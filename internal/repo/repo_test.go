package repo

import (
	"FarmKeeper/internal/model"
	"fmt"
	"sync/atomic"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var testDBSeq atomic.Int64

// newTestDB initializes a fresh in-memory SQLite (modernc.org/sqlite) per test.
// A named shared-cache DSN keeps GORM's pooled connections on one database
// while isolating tests from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.FarmType{},
		&model.ProductionType{},
		&model.Farm{},
		&model.Animal{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

// seedFarm creates a farm with fresh type rows and returns it.
func seedFarm(t *testing.T, db *gorm.DB, name, kind string) *model.Farm {
	t.Helper()
	ft := &model.FarmType{Name: "type-for-" + name}
	if err := db.Create(ft).Error; err != nil {
		t.Fatalf("seed farm type: %v", err)
	}
	pt := &model.ProductionType{Name: "prod-for-" + name, Kind: kind}
	if err := db.Create(pt).Error; err != nil {
		t.Fatalf("seed production type: %v", err)
	}
	farm := &model.Farm{Name: name, FarmTypeID: ft.ID, ProductionTypeID: pt.ID}
	if err := db.Create(farm).Error; err != nil {
		t.Fatalf("seed farm: %v", err)
	}
	return farm
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }
