package async

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/urano-b2b/internal/logger"

	"golang.org/x/sync/errgroup"
)

// ErrGroupClosed 任务组已关闭
var ErrGroupClosed = errors.New("async: task group closed")

// Task 异步任务句柄
type Task struct {
	done chan struct{}
	err  error
}

// Done 任务完成信号
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait 等待任务完成并返回任务错误
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

func finishedTask(err error) *Task {
	t := &Task{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

// Group 跟踪进程内的异步任务
// 业务逻辑不会主动取消任务，Close 时统一取消并等待。
type Group struct {
	ctx    context.Context
	cancel context.CancelFunc
	eg     errgroup.Group

	mu      sync.Mutex
	closed  bool
	pending int
}

// NewGroup 创建任务组
func NewGroup() *Group {
	ctx, cancel := context.WithCancel(context.Background())
	return &Group{ctx: ctx, cancel: cancel}
}

// Go 启动任务
// 任务使用组级别的 context，调用方 context 的取消不会中断已发出的请求，仅保留其中的值。
func (g *Group) Go(ctx context.Context, fn func(ctx context.Context) error) *Task {
	if fn == nil {
		return finishedTask(errors.New("async: task func is nil"))
	}
	taskCtx := g.ctx
	if ctx != nil {
		taskCtx = mergeValues(g.ctx, ctx)
	}
	task := &Task{done: make(chan struct{})}

	// 登记与关闭检查在同一把锁内完成，Drain/Close 返回后不会再有未跟踪的任务
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return finishedTask(ErrGroupClosed)
	}
	g.pending++
	g.eg.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				task.err = fmt.Errorf("async: task panic: %v", r)
				logger.Errorw("async_task_panic", "panic", r)
			}
			g.mu.Lock()
			g.pending--
			g.mu.Unlock()
			close(task.done)
		}()
		task.err = fn(taskCtx)
		return nil
	})
	return task
}

// Pending 未完成任务数
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// Close 取消未完成任务并等待全部退出
func (g *Group) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.mu.Unlock()

	g.cancel()
	_ = g.eg.Wait()
}

// Drain 等待全部任务完成后关闭任务组（不主动取消）
func (g *Group) Drain() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.mu.Unlock()

	_ = g.eg.Wait()
	g.cancel()
}

type valueContext struct {
	context.Context
	values context.Context
}

func (c valueContext) Value(key interface{}) interface{} {
	if v := c.Context.Value(key); v != nil {
		return v
	}
	return c.values.Value(key)
}

func mergeValues(base, values context.Context) context.Context {
	return valueContext{Context: base, values: values}
}
