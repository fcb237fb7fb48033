package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/urano-b2b/internal/models"
)

// OrderQuery 订单列表查询参数
type OrderQuery struct {
	Limit int
}

// ListOrders GET /orders?_sort=createdAt&_order=desc[&_limit=n]
func (c *Client) ListOrders(ctx context.Context, query OrderQuery) ([]models.Order, error) {
	values := url.Values{}
	values.Set("_sort", "createdAt")
	values.Set("_order", "desc")
	if query.Limit > 0 {
		values.Set("_limit", strconv.Itoa(query.Limit))
	}
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", values, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder POST /orders
func (c *Client) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
