package repository

import (
	"github.com/urano-b2b/internal/models"

	"gorm.io/gorm"
)

// CartStateRepository 购物车本地持久化接口
type CartStateRepository interface {
	Load() ([]models.CartLine, error)
	Save(lines []models.CartLine) error
}

// GormCartStateRepository GORM 实现
type GormCartStateRepository struct {
	db *gorm.DB
}

// NewCartStateRepository 创建购物车状态仓库
func NewCartStateRepository(db *gorm.DB) *GormCartStateRepository {
	return &GormCartStateRepository{db: db}
}

// Load 按插入顺序读取购物车
func (r *GormCartStateRepository) Load() ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := r.db.Order("position ASC, id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Save 整体覆盖购物车状态
func (r *GormCartStateRepository) Save(lines []models.CartLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CartLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		rows := make([]models.CartLine, len(lines))
		for i, line := range lines {
			line.ID = 0
			line.Position = i
			rows[i] = line
		}
		return tx.Create(&rows).Error
	})
}
