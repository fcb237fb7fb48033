package api

import (
	"time"

	"github.com/urano-b2b/internal/http/response"
	"github.com/urano-b2b/internal/models"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User      models.Identity `json:"user"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// Login POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	user, token, expiresAt, err := h.CustomerAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "error.login_failed")
		return
	}
	response.OK(c, LoginResponse{
		User:      models.Identity{Email: user.Email, Name: user.Name, Role: user.Role},
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
