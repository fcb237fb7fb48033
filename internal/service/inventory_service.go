package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urano-b2b/internal/cache"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/queue"
	"github.com/urano-b2b/internal/repository"

	"gorm.io/gorm"
)

// InventoryService 商品目录与库存（mock 后端）
type InventoryService struct {
	productRepo repository.ProductRepository
	queueClient *queue.Client
	dispatcher  *StockAlertDispatchService
	listTTL     time.Duration
}

// NewInventoryService 创建库存服务
func NewInventoryService(productRepo repository.ProductRepository, queueClient *queue.Client, dispatcher *StockAlertDispatchService, listTTL time.Duration) *InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		queueClient: queueClient,
		dispatcher:  dispatcher,
		listTTL:     listTTL,
	}
}

// List 商品列表，无搜索词时优先读取缓存
func (s *InventoryService) List(ctx context.Context, filter repository.ProductListFilter) ([]models.Product, error) {
	cacheable := strings.TrimSpace(filter.Search) == "" && filter.Limit <= 0
	if cacheable {
		cached, hit, err := cache.GetProductList(ctx, filter.OnlyNew)
		if err != nil {
			logger.Warnw("product_list_cache_read_failed", "error", err)
		} else if hit {
			return cached, nil
		}
	}
	products, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	if cacheable {
		if err := cache.SetProductList(ctx, filter.OnlyNew, products, s.listTTL); err != nil {
			logger.Warnw("product_list_cache_write_failed", "error", err)
		}
	}
	return products, nil
}

// Get 商品详情
func (s *InventoryService) Get(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Restock 更新库存，从无货变为有货时触发到货提醒分发
func (s *InventoryService) Restock(ctx context.Context, id string, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock debe ser mayor o igual a 0", ErrInvalidInput)
	}
	previous, err := s.productRepo.UpdateStock(id, stock)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := cache.InvalidateProductList(ctx); err != nil {
		logger.Warnw("product_list_cache_invalidate_failed", "product_id", id, "error", err)
	}
	if previous <= 0 && stock > 0 {
		s.dispatchRestock(ctx, id, stock)
	}
	return s.Get(id)
}

func (s *InventoryService) dispatchRestock(ctx context.Context, productID string, stock int) {
	payload := queue.StockAlertDispatchPayload{ProductID: productID, Stock: stock}
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueStockAlertDispatch(payload); err != nil {
			logger.Warnw("stock_alert_dispatch_enqueue_failed", "product_id", productID, "error", err)
		}
		return
	}
	if s.dispatcher == nil {
		return
	}
	if _, err := s.dispatcher.Dispatch(ctx, productID); err != nil {
		logger.Warnw("stock_alert_dispatch_failed", "product_id", productID, "error", err)
	}
}
