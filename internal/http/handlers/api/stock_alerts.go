package api

import (
	"strings"
	"time"

	"github.com/urano-b2b/internal/http/response"

	"github.com/gin-gonic/gin"
)

// StockAlertRequest 到货提醒登记请求
type StockAlertRequest struct {
	ProductID string    `json:"productId" binding:"required"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateStockAlert POST /stock-alerts
func (h *Handler) CreateStockAlert(c *gin.Context) {
	email, ok := getCustomerEmail(c)
	if !ok {
		return
	}
	var req StockAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.alert_invalid", nil)
		return
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = email
	}
	alert, err := h.StockAlertDispatch.Register(req.ProductID, userID, req.CreatedAt)
	if err != nil {
		respondWithMappedError(c, err, stockAlertErrorRules, response.CodeInternal, "error.alert_create_failed")
		return
	}
	response.Created(c, alert)
}
