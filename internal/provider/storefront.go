package provider

import (
	"fmt"

	"github.com/urano-b2b/internal/async"
	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/notify"
	"github.com/urano-b2b/internal/repository"
	"github.com/urano-b2b/internal/service"

	"gorm.io/gorm"
)

// Storefront 客户端依赖注入容器
type Storefront struct {
	Config  *config.Config
	StateDB *gorm.DB
	Backend *backend.Client
	Tasks   *async.Group
	Console *notify.Console

	// Services
	Cart        *service.CartService
	Auth        *service.AuthService
	Orders      *service.OrderService
	StockAlerts *service.StockAlertService
	Catalog     *service.CatalogService
	Account     *service.AccountService
}

// NewStorefront 打开本地状态库并初始化客户端
func NewStorefront(cfg *config.Config, console *notify.Console) (*Storefront, error) {
	db, err := repository.OpenStateDB(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}
	sf, err := NewStorefrontWithDB(cfg, db, console)
	if err != nil {
		closeStateDB(db)
		return nil, err
	}
	return sf, nil
}

// NewStorefrontWithDB 使用指定的本地状态库初始化客户端
func NewStorefrontWithDB(cfg *config.Config, db *gorm.DB, console *notify.Console) (*Storefront, error) {
	client, err := backend.NewClient(backend.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
	})
	if err != nil {
		return nil, err
	}

	sf := &Storefront{
		Config:  cfg,
		StateDB: db,
		Backend: client,
		Tasks:   async.NewGroup(),
		Console: console,
	}
	if err := sf.initServices(); err != nil {
		sf.Tasks.Close()
		return nil, err
	}
	return sf, nil
}

func (sf *Storefront) initServices() error {
	cart, err := service.NewCartService(repository.NewCartStateRepository(sf.StateDB))
	if err != nil {
		return fmt.Errorf("init cart failed: %w", err)
	}
	sf.Cart = cart

	auth, err := service.NewAuthService(repository.NewSessionRepository(sf.StateDB), sf.Backend)
	if err != nil {
		return fmt.Errorf("init session failed: %w", err)
	}
	sf.Auth = auth
	sf.Backend.SetTokenSource(backend.TokenFunc(auth.Token))

	var notifier notify.Notifier = notify.LogNotifier{}
	var navigator notify.Navigator = notify.LogNotifier{}
	if sf.Console != nil {
		notifier = sf.Console
		navigator = sf.Console
	}

	sf.Orders = service.NewOrderService(service.OrderServiceOptions{
		Cart:                 cart,
		Identity:             auth,
		Orders:               sf.Backend,
		Products:             sf.Backend,
		Tasks:                sf.Tasks,
		Notifier:             notifier,
		Navigator:            navigator,
		FallbackCustomerID:   sf.Config.Order.FallbackCustomerID,
		FallbackCustomerName: sf.Config.Order.FallbackCustomerName,
		MaxObservations:      sf.Config.Order.MaxObservations,
	})

	alerts, err := service.NewStockAlertService(service.StockAlertServiceOptions{
		Repo:           repository.NewStockAlertStateRepository(sf.StateDB),
		Remote:         sf.Backend,
		Identity:       auth,
		Notifier:       notifier,
		FallbackUserID: sf.Config.Order.FallbackCustomerID,
	})
	if err != nil {
		return fmt.Errorf("init stock alerts failed: %w", err)
	}
	sf.StockAlerts = alerts

	sf.Catalog = service.NewCatalogService(sf.Backend, cart, notifier)
	sf.Account = service.NewAccountService(sf.Backend, sf.Backend, sf.Backend)
	return nil
}

// Close 等待进行中的请求结束并关闭本地状态库
func (sf *Storefront) Close() {
	if sf == nil {
		return
	}
	if sf.Tasks != nil {
		sf.Tasks.Drain()
	}
	closeStateDB(sf.StateDB)
}

func closeStateDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warnw("provider_state_db_handle_failed", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warnw("provider_close_state_db_failed", "error", err)
	}
}
