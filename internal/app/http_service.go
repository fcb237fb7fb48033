package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/urano-b2b/internal/logger"
)

// HTTPService mock 后端 API 服务
type HTTPService struct {
	server *http.Server

	mu    sync.Mutex
	addr  string
	ready chan struct{}
}

// NewHTTPService 创建 API 服务，addr 端口为 0 时由系统分配
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		ready: make(chan struct{}),
	}
}

// Name 服务名称
func (s *HTTPService) Name() string {
	return "api"
}

// Ready 开始监听后关闭
func (s *HTTPService) Ready() <-chan struct{} {
	return s.ready
}

// Addr 实际监听地址，未监听时为空
func (s *HTTPService) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Start 监听并处理请求，Stop 后返回 nil
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	close(s.ready)
	logger.Infow("app_http_listening", "addr", ln.Addr().String())

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅关闭，等待进行中的请求
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
