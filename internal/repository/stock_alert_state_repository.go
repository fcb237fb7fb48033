package repository

import (
	"time"

	"github.com/urano-b2b/internal/models"

	"gorm.io/gorm"
)

// StockAlertStateRepository 到货提醒本地持久化接口
type StockAlertStateRepository interface {
	Load() ([]string, error)
	Save(productIDs []string) error
}

// GormStockAlertStateRepository GORM 实现
type GormStockAlertStateRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStockAlertStateRepository 创建到货提醒状态仓库
func NewStockAlertStateRepository(db *gorm.DB) *GormStockAlertStateRepository {
	return &GormStockAlertStateRepository{db: db, now: time.Now}
}

// Load 读取已登记的商品 ID
func (r *GormStockAlertStateRepository) Load() ([]string, error) {
	var marks []models.StockAlertMark
	if err := r.db.Order("created_at ASC, product_id ASC").Find(&marks).Error; err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(marks))
	for _, mark := range marks {
		ids = append(ids, mark.ProductID)
	}
	return ids, nil
}

// Save 覆盖保存登记集合，已存在的登记保留原登记时间
func (r *GormStockAlertStateRepository) Save(productIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.StockAlertMark
		if err := tx.Find(&existing).Error; err != nil {
			return err
		}
		createdAt := make(map[string]time.Time, len(existing))
		for _, mark := range existing {
			createdAt[mark.ProductID] = mark.CreatedAt
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.StockAlertMark{}).Error; err != nil {
			return err
		}
		if len(productIDs) == 0 {
			return nil
		}
		now := r.now()
		rows := make([]models.StockAlertMark, 0, len(productIDs))
		seen := make(map[string]struct{}, len(productIDs))
		for _, id := range productIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			at, ok := createdAt[id]
			if !ok {
				at = now
			}
			rows = append(rows, models.StockAlertMark{ProductID: id, CreatedAt: at})
		}
		return tx.Create(&rows).Error
	})
}
