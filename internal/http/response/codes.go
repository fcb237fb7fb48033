package response

import "net/http"

// 错误码与 HTTP 状态码一致（mock 后端沿用 REST 语义）
const (
	CodeOK           = http.StatusOK
	CodeBadRequest   = http.StatusBadRequest
	CodeUnauthorized = http.StatusUnauthorized
	CodeForbidden    = http.StatusForbidden
	CodeNotFound     = http.StatusNotFound
	CodeConflict     = http.StatusConflict
	CodeTooManyReqs  = http.StatusTooManyRequests
	CodeInternal     = http.StatusInternalServerError
)
