package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// repeatFetchConcurrency 再次下单时并发拉取商品的上限
const repeatFetchConcurrency = 4

// ListOrders 订单历史（按创建时间倒序），limit 为 0 时返回全部
func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	if limit < 0 {
		limit = 0
	}
	orders, err := s.orders.ListOrders(ctx, backend.OrderQuery{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// FindOrder 按 ID 或订单号（可带 #）查找订单
func (s *OrderService) FindOrder(ctx context.Context, ref string) (*models.Order, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrOrderNotFound
	}
	orders, err := s.ListOrders(ctx, 0)
	if err != nil {
		return nil, err
	}
	number := strings.TrimPrefix(ref, "#")
	for i := range orders {
		if orders[i].ID == ref || orders[i].OrderNumber == number {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// RepeatOrder 按最新商品信息把历史订单重新加入购物车，返回加入的件数
// 单个商品拉取失败时跳过该行。
func (s *OrderService) RepeatOrder(ctx context.Context, orderID string) (int, error) {
	order, err := s.FindOrder(ctx, orderID)
	if err != nil {
		s.notifier.Error(msgRepeatOrderFailed)
		return 0, err
	}

	products := s.fetchOrderProducts(ctx, order.Items)
	added := 0
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok || item.Quantity <= 0 {
			continue
		}
		if err := s.cart.AddItem(*product, item.Quantity); err != nil {
			s.notifier.Error(msgRepeatOrderFailed)
			return added, err
		}
		added += item.Quantity
	}

	if added == 0 {
		s.notifier.Error(msgRepeatOrderEmpty)
		return 0, ErrRepeatOrderEmpty
	}
	logger.Infow("order_repeated", "order_id", order.ID, "order_number", order.OrderNumber, "units", added)
	s.notifier.Success(msgRepeatOrderAdded(added))
	s.navigator.Navigate(constants.ViewCart)
	return added, nil
}

// fetchOrderProducts 并发拉取订单中的商品，同一商品只请求一次
func (s *OrderService) fetchOrderProducts(ctx context.Context, items []models.OrderItem) map[string]*models.Product {
	var (
		flight  singleflight.Group
		results = make([]*models.Product, len(items))
		eg      errgroup.Group
	)
	eg.SetLimit(repeatFetchConcurrency)
	for i, item := range items {
		i, productID := i, item.ProductID
		if strings.TrimSpace(productID) == "" {
			continue
		}
		eg.Go(func() error {
			value, err, _ := flight.Do(productID, func() (interface{}, error) {
				return s.products.GetProduct(ctx, productID)
			})
			if err != nil {
				logger.Warnw("order_repeat_product_fetch_failed", "product_id", productID, "error", err)
				return nil
			}
			if product, ok := value.(*models.Product); ok && product != nil {
				results[i] = product
			}
			return nil
		})
	}
	_ = eg.Wait()

	out := make(map[string]*models.Product, len(items))
	for i, product := range results {
		if product != nil {
			out[items[i].ProductID] = product
		}
	}
	return out
}
