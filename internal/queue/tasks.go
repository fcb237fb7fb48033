package queue

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/urano-b2b/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskStockAlertDispatch 到货提醒分发任务
	TaskStockAlertDispatch = constants.TaskStockAlertDispatch
)

// StockAlertDispatchPayload 到货提醒分发任务载荷
type StockAlertDispatchPayload struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

// NewStockAlertDispatchTask 创建到货提醒分发任务
func NewStockAlertDispatchTask(payload StockAlertDispatchPayload) (*asynq.Task, error) {
	if strings.TrimSpace(payload.ProductID) == "" {
		return nil, errors.New("product id is required")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStockAlertDispatch, body), nil
}

// ParseStockAlertDispatchPayload 解析到货提醒分发任务载荷
func ParseStockAlertDispatchPayload(task *asynq.Task) (StockAlertDispatchPayload, error) {
	var payload StockAlertDispatchPayload
	if task == nil {
		return payload, errors.New("task is nil")
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
