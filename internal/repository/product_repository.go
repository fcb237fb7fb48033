package repository

import (
	"errors"
	"strings"

	"github.com/urano-b2b/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	UpdateStock(id string, stock int) (int, error)
	Count() (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 商品列表（按创建顺序）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.OnlyNew {
		query = query.Where("is_new = ?", true)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		condition, argCount := buildLikeCondition(r.db, []string{"title", "author", "isbn", "sello"})
		query = query.Where(condition, repeatLikeArgs("%"+search+"%", argCount)...)
	}
	query = applyLimit(query, filter.Limit)

	if err := query.Order("created_at ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 根据 ID 获取商品，不存在时返回 nil
func (r *GormProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// UpdateStock 更新库存并返回更新前的库存
func (r *GormProductRepository) UpdateStock(id string, stock int) (int, error) {
	previous := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return err
		}
		previous = product.Stock
		return tx.Model(&models.Product{}).Where("id = ?", id).Update("stock", stock).Error
	})
	if err != nil {
		return 0, err
	}
	return previous, nil
}

// Count 商品总数
func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
