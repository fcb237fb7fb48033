package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/urano-b2b/internal/logger"
)

// Notifier 用户可见的提示（成功 / 失败）
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator 视图跳转信号
type Navigator interface {
	Navigate(view string)
}

// LogNotifier 写入结构化日志的提示实现
type LogNotifier struct{}

// Success 成功提示
func (LogNotifier) Success(message string) {
	logger.Infow("notify_success", "message", message)
}

// Error 失败提示
func (LogNotifier) Error(message string) {
	logger.Warnw("notify_error", "message", message)
}

// Navigate 记录跳转
func (LogNotifier) Navigate(view string) {
	logger.Debugw("navigate", "view", view)
}

// Console 命令行提示实现
type Console struct {
	mu  sync.Mutex
	Out io.Writer
	Err io.Writer
	// Route 最近一次导航目标
	Route string
}

// NewConsole 创建命令行提示
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{Out: out, Err: errOut}
}

// Success 成功提示
func (c *Console) Success(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Out, "✔ %s\n", message)
}

// Error 失败提示
func (c *Console) Error(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.Err, "✖ %s\n", message)
}

// Navigate 记录导航目标
func (c *Console) Navigate(view string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Route = view
}

// CurrentRoute 最近一次导航目标
func (c *Console) CurrentRoute() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Route
}
