package service

import "github.com/urano-b2b/internal/constants"

var orderStatusLabels = map[string]string{
	constants.OrderStatusOpen:          "Abierto",
	constants.OrderStatusInPreparation: "En preparación",
	constants.OrderStatusShipped:       "Enviado",
	constants.OrderStatusDelivered:     "Entregado",
	constants.OrderStatusClosed:        "Cerrado",
	constants.OrderStatusProcessed:     "Procesado",
}

// StatusLabel 订单状态展示文案，未知状态原样返回
func StatusLabel(status string) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return status
}

// IsClosedStatus 是否为已结束状态（可下载发票）
func IsClosedStatus(status string) bool {
	switch status {
	case constants.OrderStatusClosed, constants.OrderStatusProcessed, constants.OrderStatusDelivered:
		return true
	}
	return false
}
