package repository

import (
	"time"

	"github.com/urano-b2b/internal/models"

	"gorm.io/gorm"
)

// StockAlertRepository 到货提醒数据访问接口
type StockAlertRepository interface {
	Create(alert *models.StockAlert) error
	ListPendingByProduct(productID string) ([]models.StockAlert, error)
	ListPendingProductIDs() ([]string, error)
	MarkNotified(ids []uint, at time.Time) (int64, error)
}

// GormStockAlertRepository GORM 实现
type GormStockAlertRepository struct {
	db *gorm.DB
}

// NewStockAlertRepository 创建到货提醒仓库
func NewStockAlertRepository(db *gorm.DB) *GormStockAlertRepository {
	return &GormStockAlertRepository{db: db}
}

// Create 创建登记
func (r *GormStockAlertRepository) Create(alert *models.StockAlert) error {
	return r.db.Create(alert).Error
}

// ListPendingByProduct 获取商品尚未通知的登记
func (r *GormStockAlertRepository) ListPendingByProduct(productID string) ([]models.StockAlert, error) {
	var alerts []models.StockAlert
	err := r.db.Where("product_id = ? AND notified_at IS NULL", productID).
		Order("created_at ASC, id ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListPendingProductIDs 获取存在待通知登记的商品ID
func (r *GormStockAlertRepository) ListPendingProductIDs() ([]string, error) {
	var ids []string
	err := r.db.Model(&models.StockAlert{}).
		Where("notified_at IS NULL").
		Distinct("product_id").
		Order("product_id ASC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// MarkNotified 标记已通知，返回受影响行数
func (r *GormStockAlertRepository) MarkNotified(ids []uint, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.StockAlert{}).
		Where("id IN ? AND notified_at IS NULL", ids).
		Update("notified_at", at)
	return result.RowsAffected, result.Error
}
