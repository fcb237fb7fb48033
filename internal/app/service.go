package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

const defaultStopTimeout = 10 * time.Second

// Service 可由 Runner 管理的后台服务（api / worker）
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 服务运行器
// 任一服务退出即触发整体关闭，按启动的逆序停止。
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// Names 返回已登记的服务名称
func (r *Runner) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.services))
	for _, svc := range r.services {
		if svc != nil {
			names = append(names, svc.Name())
		}
	}
	return names
}

// RunWithOptions 运行服务直到收到退出信号或某个服务退出
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

type serviceExit struct {
	name string
	err  error
}

// Run 启动全部服务并阻塞，ctx 取消视为正常关闭
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	for i, svc := range r.services {
		if svc == nil {
			return fmt.Errorf("service #%d is nil", i)
		}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	exits := make(chan serviceExit, len(r.services))
	for _, svc := range r.services {
		svc := svc
		log.Infow("app_service_started", "service", svc.Name())
		go func() {
			exits <- serviceExit{name: svc.Name(), err: svc.Start(runCtx)}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Infow("app_shutdown", "reason", "signal")
	case exit := <-exits:
		if exit.err != nil {
			log.Errorw("app_service_exited", "service", exit.name, "error", exit.err)
			runErr = fmt.Errorf("service %s: %w", exit.name, exit.err)
		} else {
			log.Infow("app_service_exited", "service", exit.name)
		}
		log.Infow("app_shutdown", "reason", "service_exit", "service", exit.name)
	}
	cancel()

	if stopTimeout <= 0 {
		stopTimeout = defaultStopTimeout
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	for i := len(r.services) - 1; i >= 0; i-- {
		svc := r.services[i]
		if err := svc.Stop(stopCtx); err != nil {
			log.Errorw("app_service_stop_failed", "service", svc.Name(), "error", err)
			continue
		}
		log.Infow("app_service_stopped", "service", svc.Name())
	}
	return runErr
}
