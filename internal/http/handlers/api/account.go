package api

import (
	"github.com/urano-b2b/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetAccount GET /account
func (h *Handler) GetAccount(c *gin.Context) {
	email, ok := getCustomerEmail(c)
	if !ok {
		return
	}
	account, err := h.AccountRepo.GetByCustomer(email)
	if err != nil {
		respondError(c, response.CodeInternal, "error.account_fetch_failed", err)
		return
	}
	if account == nil {
		respondError(c, response.CodeNotFound, "error.account_not_found", nil)
		return
	}
	response.OK(c, account)
}
