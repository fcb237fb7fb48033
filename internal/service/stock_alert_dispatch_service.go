package service

import (
	"context"
	"strings"
	"time"

	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/repository"
)

// StockAlertDispatchService 到货后通知已登记的客户（mock 后端）
type StockAlertDispatchService struct {
	alertRepo   repository.StockAlertRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewStockAlertDispatchService 创建分发服务
func NewStockAlertDispatchService(alertRepo repository.StockAlertRepository, productRepo repository.ProductRepository) *StockAlertDispatchService {
	return &StockAlertDispatchService{alertRepo: alertRepo, productRepo: productRepo, now: time.Now}
}

// Register 保存客户登记
func (s *StockAlertDispatchService) Register(productID, userID string, createdAt time.Time) (*models.StockAlert, error) {
	productID = strings.TrimSpace(productID)
	userID = strings.TrimSpace(userID)
	if productID == "" || userID == "" {
		return nil, ErrInvalidInput
	}
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	alert := &models.StockAlert{ProductID: productID, UserID: userID, CreatedAt: createdAt.UTC()}
	if err := s.alertRepo.Create(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// Dispatch 标记该商品全部待通知登记为已通知，返回通知数量
func (s *StockAlertDispatchService) Dispatch(ctx context.Context, productID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	alerts, err := s.alertRepo.ListPendingByProduct(productID)
	if err != nil {
		return 0, err
	}
	if len(alerts) == 0 {
		return 0, nil
	}
	ids := make([]uint, 0, len(alerts))
	for _, alert := range alerts {
		ids = append(ids, alert.ID)
		logger.Infow("stock_alert_notified", "product_id", productID, "user_id", alert.UserID, "alert_id", alert.ID)
	}
	return s.alertRepo.MarkNotified(ids, s.now())
}

// SweepInStock 补发已到货但尚未通知的登记（队列任务丢失时兜底）
func (s *StockAlertDispatchService) SweepInStock(ctx context.Context) (int64, error) {
	if s.productRepo == nil {
		return 0, nil
	}
	productIDs, err := s.alertRepo.ListPendingProductIDs()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, productID := range productIDs {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			logger.Warnw("stock_alert_sweep_product_fetch_failed", "product_id", productID, "error", err)
			continue
		}
		if product == nil || !product.InStock() {
			continue
		}
		notified, err := s.Dispatch(ctx, productID)
		if err != nil {
			return total, err
		}
		total += notified
	}
	return total, nil
}
