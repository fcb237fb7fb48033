package router

import (
	"fmt"
	"strings"

	"github.com/urano-b2b/internal/cache"
	"github.com/urano-b2b/internal/config"
	apihandlers "github.com/urano-b2b/internal/http/handlers/api"
	"github.com/urano-b2b/internal/http/response"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := apihandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "urano"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 公开接口
	r.GET("/products", handler.ListProducts)
	r.GET("/products/:id", handler.GetProduct)
	r.POST("/auth/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("email")), handler.Login)

	// 客户接口（需鉴权）
	customer := r.Group("")
	customer.Use(CustomerJWTAuthMiddleware(c.CustomerAuthService, c.UserRepo))
	{
		customer.PATCH("/products/:id", handler.RestockProduct)
		customer.GET("/orders", handler.ListOrders)
		customer.POST("/orders", handler.CreateOrder)
		customer.GET("/orders/:id", handler.GetOrder)
		customer.GET("/account", handler.GetAccount)
		customer.POST("/stock-alerts", handler.CreateStockAlert)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "recurso no encontrado")
	})

	return r
}
