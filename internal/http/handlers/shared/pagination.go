package shared

import "strconv"

// maxListLimit 列表接口单次返回上限
const maxListLimit = 100

// NormalizeLimit 解析 _limit 参数，非法或缺省时返回 0（不限制）。
func NormalizeLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit
}
