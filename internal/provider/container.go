package provider

import (
	"github.com/urano-b2b/internal/cache"
	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/queue"
	"github.com/urano-b2b/internal/repository"
	"github.com/urano-b2b/internal/service"

	"gorm.io/gorm"
)

// Container mock 后端依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo       repository.UserRepository
	ProductRepo    repository.ProductRepository
	OrderRepo      repository.OrderRepository
	AccountRepo    repository.AccountRepository
	StockAlertRepo repository.StockAlertRepository

	// Services
	CustomerAuthService *service.CustomerAuthService
	InventoryService    *service.InventoryService
	StockAlertDispatch  *service.StockAlertDispatchService
}

// NewContainer 使用全局数据库初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.AccountRepo = repository.NewAccountRepository(db)
	c.StockAlertRepo = repository.NewStockAlertRepository(db)
}

func (c *Container) initServices() {
	c.CustomerAuthService = service.NewCustomerAuthService(c.Config.JWT, c.UserRepo)
	c.StockAlertDispatch = service.NewStockAlertDispatchService(c.StockAlertRepo, c.ProductRepo)
	c.InventoryService = service.NewInventoryService(c.ProductRepo, c.QueueClient, c.StockAlertDispatch, c.Config.Redis.ProductTTL())
}

// Close 释放容器资源
func (c *Container) Close() {
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
