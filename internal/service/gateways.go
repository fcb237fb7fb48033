package service

import (
	"context"

	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/models"
)

// ProductDirectory 商品目录服务（GET /products）
type ProductDirectory interface {
	ListProducts(ctx context.Context, query backend.ProductQuery) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// OrderGateway 订单持久化服务（/orders）
type OrderGateway interface {
	ListOrders(ctx context.Context, query backend.OrderQuery) ([]models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
}

// AccountGateway 账户服务（GET /account）
type AccountGateway interface {
	GetAccount(ctx context.Context) (*models.Account, error)
}

// StockAlertGateway 到货提醒服务（POST /stock-alerts）
type StockAlertGateway interface {
	CreateStockAlert(ctx context.Context, req backend.StockAlertRequest) error
}

// AuthProvider 登录服务（POST /auth/login）
type AuthProvider interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
}

// IdentitySource 当前会话身份来源
type IdentitySource interface {
	CurrentUser() (models.Identity, bool)
}
