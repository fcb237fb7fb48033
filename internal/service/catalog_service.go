package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/notify"
)

// ProductDetail 商品详情与相关推荐
type ProductDetail struct {
	Product models.Product
	Related []models.Product
}

// CatalogService 目录浏览与加入购物车
type CatalogService struct {
	products ProductDirectory
	cart     *CartService
	notifier notify.Notifier
}

// NewCatalogService 创建目录服务
func NewCatalogService(products ProductDirectory, cart *CartService, notifier notify.Notifier) *CatalogService {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &CatalogService{products: products, cart: cart, notifier: notifier}
}

// ListProducts 拉取商品列表
func (s *CatalogService) ListProducts(ctx context.Context, onlyNew bool) ([]models.Product, error) {
	products, err := s.products.ListProducts(ctx, backend.ProductQuery{OnlyNew: onlyNew})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	return products, nil
}

// Browse 拉取商品并执行目录查询
func (s *CatalogService) Browse(ctx context.Context, view *CatalogView) (CatalogPage, error) {
	products, err := s.ListProducts(ctx, false)
	if err != nil {
		return CatalogPage{}, err
	}
	return view.Apply(products), nil
}

// GetProduct 商品详情，附带同作者或同出版社的有货商品（最多 4 个）
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*ProductDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrProductNotFound
	}
	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	detail := &ProductDetail{Product: *product}
	all, err := s.products.ListProducts(ctx, backend.ProductQuery{})
	if err != nil {
		// 推荐列表为可选内容
		return detail, nil
	}
	detail.Related = RelatedProducts(*product, all, constants.RelatedProductsLimit)
	return detail, nil
}

// RelatedProducts 同作者或同出版社、有货且不含自身的商品
func RelatedProducts(product models.Product, all []models.Product, limit int) []models.Product {
	related := make([]models.Product, 0, limit)
	for _, candidate := range all {
		if len(related) >= limit {
			break
		}
		if candidate.ID == product.ID || !candidate.InStock() {
			continue
		}
		if candidate.Author == product.Author || candidate.Sello == product.Sello {
			related = append(related, candidate)
		}
	}
	return related
}

// AddToCart 从目录加入购物车，数量限制在 [1, 库存] 区间
func (s *CatalogService) AddToCart(product models.Product, quantity int) (int, error) {
	if !product.InStock() {
		s.notifier.Error(ErrProductOutOfStock.Error())
		return 0, ErrProductOutOfStock
	}
	if quantity < 1 {
		quantity = 1
	}
	if quantity > product.Stock {
		quantity = product.Stock
	}
	if err := s.cart.AddItem(product, quantity); err != nil {
		s.notifier.Error(err.Error())
		return 0, err
	}
	s.notifier.Success(msgAddedToCart(product.Title))
	return quantity, nil
}
