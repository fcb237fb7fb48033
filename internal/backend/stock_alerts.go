package backend

import (
	"context"
	"net/http"
	"time"
)

// StockAlertRequest POST /stock-alerts 请求体
type StockAlertRequest struct {
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateStockAlert POST /stock-alerts
func (c *Client) CreateStockAlert(ctx context.Context, req StockAlertRequest) error {
	return c.do(ctx, http.MethodPost, "/stock-alerts", nil, req, nil)
}
