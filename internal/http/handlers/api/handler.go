package api

import (
	handlershared "github.com/urano-b2b/internal/http/handlers/shared"
	"github.com/urano-b2b/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler mock REST 后端接口处理器
// 响应体直接输出资源本体（与 json-server 保持一致）。
type Handler struct {
	*provider.Container
}

// New 创建接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getCustomerEmail(c *gin.Context) (string, bool) {
	return handlershared.GetContextStringWithKeys(c, "customer_email", "error.unauthorized")
}
