package repository

import (
	"errors"

	"github.com/urano-b2b/internal/models"

	"gorm.io/gorm"
)

// AccountRepository 客户账户数据访问接口
type AccountRepository interface {
	GetByCustomer(customerID string) (*models.Account, error)
	Create(account *models.Account) error
}

// GormAccountRepository GORM 实现
type GormAccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建账户仓库
func NewAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// GetByCustomer 获取客户账户（发票按日期倒序），不存在时返回 nil
func (r *GormAccountRepository) GetByCustomer(customerID string) (*models.Account, error) {
	var account models.Account
	err := r.db.Preload("Invoices", func(db *gorm.DB) *gorm.DB {
		return db.Order("date DESC, id DESC")
	}).Where("customer_id = ?", customerID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Create 创建账户与发票
func (r *GormAccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}
