package api

import (
	"strings"
	"time"

	"github.com/urano-b2b/internal/constants"
	handlershared "github.com/urano-b2b/internal/http/handlers/shared"
	"github.com/urano-b2b/internal/http/response"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListOrders GET /orders?_sort=createdAt&_order=desc&_limit=n
func (h *Handler) ListOrders(c *gin.Context) {
	email, ok := getCustomerEmail(c)
	if !ok {
		return
	}
	filter := repository.OrderListFilter{
		CustomerID: email,
		SortDesc:   !strings.EqualFold(strings.TrimSpace(c.Query("_order")), "asc"),
		Limit:      handlershared.NormalizeLimit(c.Query("_limit")),
	}
	orders, err := h.OrderRepo.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	response.OK(c, orders)
}

// GetOrder GET /orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	email, ok := getCustomerEmail(c)
	if !ok {
		return
	}
	order, err := h.OrderRepo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if order == nil || order.CustomerID != email {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}
	response.OK(c, order)
}

// CreateOrder POST /orders
// 订单按客户端快照原样保存，客户标识以 token 中的邮箱为准。
func (h *Handler) CreateOrder(c *gin.Context) {
	email, ok := getCustomerEmail(c)
	if !ok {
		return
	}
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		respondError(c, response.CodeBadRequest, "error.order_invalid", nil)
		return
	}
	if len(order.Items) == 0 || strings.TrimSpace(order.OrderNumber) == "" {
		respondError(c, response.CodeBadRequest, "error.order_invalid", nil)
		return
	}
	for i := range order.Items {
		if strings.TrimSpace(order.Items[i].ProductID) == "" || order.Items[i].Quantity <= 0 {
			respondError(c, response.CodeBadRequest, "error.order_invalid", nil)
			return
		}
		order.Items[i].ID = 0
	}

	order.ID = uuid.NewString()
	order.CustomerID = email
	if order.Status == "" {
		order.Status = constants.OrderStatusInPreparation
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	if err := h.OrderRepo.Create(&order); err != nil {
		respondError(c, response.CodeInternal, "error.order_create_failed", err)
		return
	}
	handlershared.RequestLog(c).Infow("order_created",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"customer_id", order.CustomerID,
		"total_items", order.TotalItems,
	)
	response.Created(c, order)
}
