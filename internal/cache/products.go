package cache

import (
	"context"
	"time"

	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/models"
)

var productListVariants = []bool{false, true}

// ProductListKey 商品列表缓存键
func ProductListKey(onlyNew bool) string {
	if onlyNew {
		return constants.CacheKeyProductList + ":new"
	}
	return constants.CacheKeyProductList + ":all"
}

// GetProductList 读取商品列表缓存
func GetProductList(ctx context.Context, onlyNew bool) ([]models.Product, bool, error) {
	var products []models.Product
	hit, err := GetJSON(ctx, ProductListKey(onlyNew), &products)
	if err != nil || !hit {
		return nil, false, err
	}
	return products, true, nil
}

// SetProductList 写入商品列表缓存
func SetProductList(ctx context.Context, onlyNew bool, products []models.Product, ttl time.Duration) error {
	return SetJSON(ctx, ProductListKey(onlyNew), products, ttl)
}

// InvalidateProductList 商品库存变化后清理列表缓存
func InvalidateProductList(ctx context.Context) error {
	keys := make([]string, 0, len(productListVariants))
	for _, onlyNew := range productListVariants {
		keys = append(keys, ProductListKey(onlyNew))
	}
	return Del(ctx, keys...)
}
