package worker

import (
	"context"
	"strings"

	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/provider"
	"github.com/urano-b2b/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskStockAlertDispatch, c.handleStockAlertDispatch)
}

func (c *Consumer) handleStockAlertDispatch(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_stock_alert_dispatch_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseStockAlertDispatchPayload(task)
	if err != nil {
		logger.Warnw("worker_stock_alert_dispatch_unmarshal_failed", "error", err)
		return err
	}
	productID := strings.TrimSpace(payload.ProductID)
	if productID == "" {
		logger.Debugw("worker_stock_alert_dispatch_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}
	if c.StockAlertDispatch == nil {
		logger.Warnw("worker_stock_alert_dispatch_skip_service_nil", "product_id", productID)
		return nil
	}
	notified, err := c.StockAlertDispatch.Dispatch(ctx, productID)
	if err != nil {
		logger.Warnw("worker_stock_alert_dispatch_failed", "product_id", productID, "error", err)
		return err
	}
	logger.Infow("worker_stock_alert_dispatched", "product_id", productID, "stock", payload.Stock, "notified", notified)
	return nil
}
