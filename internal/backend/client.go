package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/urano-b2b/internal/logger"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

// TokenSource 提供当前会话的 Bearer Token，无会话时返回空字符串
type TokenSource interface {
	Token() string
}

// TokenFunc 函数形式的 TokenSource
type TokenFunc func() string

// Token 实现 TokenSource
func (f TokenFunc) Token() string {
	if f == nil {
		return ""
	}
	return f()
}

// Options 客户端配置
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Tokens     TokenSource
}

// Client mock REST 后端客户端
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
}

// NewClient 创建后端客户端
func NewClient(opts Options) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("backend base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url failed: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend base url must be absolute: %s", raw)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: base,
		http:    httpClient,
		tokens:  opts.Tokens,
	}, nil
}

// SetTokenSource 设置 Token 来源
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body failed: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debugw("backend_request_failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body failed: %w", err)
	}
	logger.Debugw("backend_request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   truncateBody(raw),
		}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response failed: %w", method, path, err)
	}
	return nil
}
