package repository

import (
	"fmt"

	"github.com/urano-b2b/internal/models"

	"gorm.io/gorm"
)

// OpenStateDB 打开客户端本地状态库并完成迁移
func OpenStateDB(driver, dsn string) (*gorm.DB, error) {
	db, err := models.OpenDB(driver, dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		return nil, fmt.Errorf("open state db failed: %w", err)
	}
	if err := models.MigrateState(db); err != nil {
		return nil, fmt.Errorf("migrate state db failed: %w", err)
	}
	return db, nil
}
