package service

import (
	"fmt"
	"strings"
	"sync"

	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/repository"
)

// CartService 购物车状态（每次变更同步落盘）
type CartService struct {
	mu    sync.Mutex
	repo  repository.CartStateRepository
	lines []models.CartLine
}

// NewCartService 创建购物车服务并加载本地状态
func NewCartService(repo repository.CartStateRepository) (*CartService, error) {
	s := &CartService{repo: repo}
	if repo == nil {
		return s, nil
	}
	lines, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load cart state failed: %w", err)
	}
	s.lines = sanitizeCartLines(lines)
	return s, nil
}

// AddItem 加入商品，已存在则累加数量（不校验库存）
func (s *CartService) AddItem(product models.Product, quantity int) error {
	if strings.TrimSpace(product.ID) == "" {
		return fmt.Errorf("%w: productId vacío", ErrInvalidInput)
	}
	if quantity <= 0 {
		quantity = 1
	}
	return s.mutate(func(lines []models.CartLine) ([]models.CartLine, bool) {
		if idx := indexOfLine(lines, product.ID); idx >= 0 {
			lines[idx].Quantity += quantity
			return lines, true
		}
		return append(lines, models.NewCartLine(product, quantity)), true
	})
}

// RemoveItem 移除商品，不存在时不做任何操作
func (s *CartService) RemoveItem(productID string) error {
	return s.mutate(func(lines []models.CartLine) ([]models.CartLine, bool) {
		idx := indexOfLine(lines, productID)
		if idx < 0 {
			return lines, false
		}
		return append(lines[:idx], lines[idx+1:]...), true
	})
}

// UpdateQuantity 设置数量，<= 0 等同于移除
func (s *CartService) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}
	return s.mutate(func(lines []models.CartLine) ([]models.CartLine, bool) {
		idx := indexOfLine(lines, productID)
		if idx < 0 || lines[idx].Quantity == quantity {
			return lines, false
		}
		lines[idx].Quantity = quantity
		return lines, true
	})
}

// ClearCart 清空购物车
func (s *CartService) ClearCart() error {
	return s.mutate(func(lines []models.CartLine) ([]models.CartLine, bool) {
		return nil, true
	})
}

// TotalItems 商品总数量
func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice 按快照单价计算总金额
func (s *CartService) TotalPrice() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumLines(s.lines)
}

// Items 返回购物车行副本（按加入顺序）
func (s *CartService) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines)
}

// Line 查询单个购物车行
func (s *CartService) Line(productID string) (models.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOfLine(s.lines, productID); idx >= 0 {
		return s.lines[idx], true
	}
	return models.CartLine{}, false
}

// mutate 在副本上执行变更，落盘成功后才替换内存状态
func (s *CartService) mutate(fn func(lines []models.CartLine) ([]models.CartLine, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := fn(cloneLines(s.lines))
	if !changed {
		return nil
	}
	if s.repo != nil {
		if err := s.repo.Save(next); err != nil {
			return fmt.Errorf("%w: %w", ErrCartPersistFailed, err)
		}
	}
	s.lines = next
	return nil
}

func sumLines(lines []models.CartLine) models.Money {
	total := models.NewMoneyFromInt(0)
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func indexOfLine(lines []models.CartLine, productID string) int {
	for i := range lines {
		if lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func cloneLines(lines []models.CartLine) []models.CartLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// sanitizeCartLines 丢弃无效行并合并重复商品
func sanitizeCartLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.ProductID) == "" || line.Quantity <= 0 {
			continue
		}
		if idx := indexOfLine(out, line.ProductID); idx >= 0 {
			out[idx].Quantity += line.Quantity
			continue
		}
		line.ID = 0
		out = append(out, line)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
