package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound 资源不存在（HTTP 404）
	ErrNotFound = errors.New("backend: resource not found")
	// ErrUnauthorized 未登录或凭证无效（HTTP 401）
	ErrUnauthorized = errors.New("backend: unauthorized")
)

const maxErrorBodyLength = 512

// APIError 后端返回的非 2xx 响应
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("backend: %s %s returned %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("backend: %s %s returned %d: %s", e.Method, e.Path, e.Status, body)
}

// Is 按状态码匹配哨兵错误
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	default:
		return false
	}
}

func truncateBody(body []byte) string {
	if len(body) <= maxErrorBodyLength {
		return string(body)
	}
	return string(body[:maxErrorBodyLength]) + "..."
}
