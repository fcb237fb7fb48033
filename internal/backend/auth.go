package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/urano-b2b/internal/models"
)

// LoginRequest POST /auth/login 请求体
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult POST /auth/login 响应体
type LoginResult struct {
	User      models.Identity `json:"user"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// Login POST /auth/login，凭证错误时返回 ErrUnauthorized
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, LoginRequest{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
