package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/urano-b2b/internal/models"
)

// ProductQuery 商品列表查询参数
type ProductQuery struct {
	OnlyNew bool
	Search  string
}

// ListProducts GET /products
func (c *Client) ListProducts(ctx context.Context, query ProductQuery) ([]models.Product, error) {
	values := url.Values{}
	if query.OnlyNew {
		values.Set("isNew", "true")
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		values.Set("q", search)
	}
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", values, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct GET /products/{id}，不存在时返回 ErrNotFound
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
