package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/urano-b2b/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate backend tables failed: %v", err)
	}
	if err := models.MigrateState(db); err != nil {
		t.Fatalf("migrate state tables failed: %v", err)
	}
	return db
}

func mustMoney(t *testing.T, raw string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	return m
}
