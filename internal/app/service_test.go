package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/provider"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type stopLog struct {
	mu    sync.Mutex
	names []string
}

func (l *stopLog) add(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

func (l *stopLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.names...)
}

type fakeService struct {
	name     string
	startErr error
	started  chan struct{}
	stops    *stopLog
}

func newFakeService(name string, stops *stopLog) *fakeService {
	return &fakeService{name: name, started: make(chan struct{}), stops: stops}
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	close(s.started)
	if s.startErr != nil {
		return s.startErr
	}
	<-ctx.Done()
	return nil
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.stops.add(s.name)
	return nil
}

func TestRunnerStopsInReverseOrderOnCancel(t *testing.T) {
	stops := &stopLog{}
	api := newFakeService("api", stops)
	wk := newFakeService("worker", stops)
	runner := NewRunner(api, wk)
	if got := strings.Join(runner.Names(), ","); got != "api,worker" {
		t.Fatalf("unexpected names %s", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx, time.Second, nil) }()
	<-api.started
	<-wk.started
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancel should be a clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("runner did not stop after cancel")
	}
	if got := strings.Join(stops.list(), ","); got != "worker,api" {
		t.Fatalf("stop order want worker,api got %s", got)
	}
}

func TestRunnerReturnsFailingServiceError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	stops := &stopLog{}
	api := newFakeService("api", stops)
	wk := newFakeService("worker", stops)
	cause := errors.New("redis unreachable")
	wk.startErr = cause

	err := NewRunner(api, wk).Run(context.Background(), time.Second, zap.New(core).Sugar())
	if !errors.Is(err, cause) || !strings.Contains(err.Error(), "service worker") {
		t.Fatalf("want wrapped worker error, got %v", err)
	}
	if len(stops.list()) != 2 {
		t.Fatalf("all services should be stopped, got %v", stops.list())
	}
	exited := logs.FilterMessage("app_service_exited").All()
	if len(exited) != 1 || exited[0].ContextMap()["service"] != "worker" {
		t.Fatalf("expected one app_service_exited for worker, got %+v", exited)
	}
}

func TestRunnerRejectsNilService(t *testing.T) {
	stops := &stopLog{}
	api := newFakeService("api", stops)
	if err := NewRunner(api, nil).Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("nil service should be rejected")
	}
	select {
	case <-api.started:
		t.Fatalf("no service should start when one is nil")
	default:
	}
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("empty runner should fail")
	}
}

func TestHTTPServiceServesUntilStopped(t *testing.T) {
	logger.Init(logger.ModeRelease, logger.Options{Dir: t.TempDir()})
	svc := NewHTTPService("127.0.0.1:0", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	if svc.Name() != "api" || svc.Addr() != "" {
		t.Fatalf("unexpected initial state name=%s addr=%s", svc.Name(), svc.Addr())
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewRunner(svc).Run(ctx, time.Second, nil) }()

	select {
	case <-svc.Ready():
	case <-time.After(2 * time.Second):
		t.Fatalf("http service did not start listening")
	}
	resp, err := http.Get(fmt.Sprintf("http://%s/health", svc.Addr()))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("shutdown should be clean, got %v", err)
	}
}

func TestBuildRunnerModes(t *testing.T) {
	logger.Init(logger.ModeRelease, logger.Options{Dir: t.TempDir()})
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		JWT:    config.JWTConfig{SecretKey: "app-secret", ExpireHours: 1},
	}
	container := provider.NewContainerWithDB(cfg, db)
	t.Cleanup(container.Close)

	for _, mode := range []string{ModeAll, ModeAPI} {
		runner, err := buildRunner(cfg, mode, container)
		if err != nil {
			t.Fatalf("mode %s: build failed: %v", mode, err)
		}
		if got := strings.Join(runner.Names(), ","); got != "api" {
			t.Fatalf("mode %s: want only api without queue, got %s", mode, got)
		}
	}
	if _, err := buildRunner(cfg, ModeWorker, container); err == nil {
		t.Fatalf("worker mode should fail when the queue is disabled")
	}
	if _, err := buildRunner(cfg, "batch", container); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}
