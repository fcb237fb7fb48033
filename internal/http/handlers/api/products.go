package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/urano-b2b/internal/http/response"
	"github.com/urano-b2b/internal/repository"
	"github.com/urano-b2b/internal/service"

	"github.com/gin-gonic/gin"
)

// RestockRequest 库存更新请求
type RestockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// ListProducts GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	onlyNew, _ := strconv.ParseBool(strings.TrimSpace(c.Query("isNew")))
	filter := repository.ProductListFilter{
		OnlyNew: onlyNew,
		Search:  c.Query("q"),
	}
	products, err := h.InventoryService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.OK(c, products)
}

// GetProduct GET /products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.InventoryService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.OK(c, product)
}

// RestockProduct PATCH /products/:id
func (h *Handler) RestockProduct(c *gin.Context) {
	var req RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.stock_invalid", nil)
		return
	}
	product, err := h.InventoryService.Restock(c.Request.Context(), c.Param("id"), *req.Stock)
	if err != nil {
		respondWithMappedError(c, err, restockErrorRules, response.CodeInternal, "error.restock_failed")
		return
	}
	response.OK(c, product)
}
