package shared

import (
	"strings"

	"github.com/urano-b2b/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextStringWithKeys 从上下文读取字符串值并统一处理错误响应。
func GetContextStringWithKeys(c *gin.Context, key, typeInvalidKey string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}
	str, ok := value.(string)
	if !ok {
		RespondError(c, response.CodeInternal, typeInvalidKey, nil)
		return "", false
	}
	if strings.TrimSpace(str) == "" {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}
	return str, true
}
