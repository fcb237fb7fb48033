package backend

import (
	"context"
	"net/http"

	"github.com/urano-b2b/internal/models"
)

// GetAccount GET /account
func (c *Client) GetAccount(ctx context.Context) (*models.Account, error) {
	var account models.Account
	if err := c.do(ctx, http.MethodGet, "/account", nil, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
