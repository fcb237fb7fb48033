package worker

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/provider"
	"github.com/urano-b2b/internal/queue"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupWorkerTestContainer(t *testing.T) *provider.Container {
	t.Helper()
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
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	container := provider.NewContainerWithDB(&config.Config{}, db)
	t.Cleanup(container.Close)
	return container
}

func TestHandleStockAlertDispatchMarksPending(t *testing.T) {
	container := setupWorkerTestContainer(t)
	for _, user := range []string{"a@libreria.com", "b@libreria.com"} {
		if _, err := container.StockAlertDispatch.Register("7", user, time.Time{}); err != nil {
			t.Fatalf("register alert failed: %v", err)
		}
	}
	task, err := queue.NewStockAlertDispatchTask(queue.StockAlertDispatchPayload{ProductID: "7", Stock: 3})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}

	consumer := NewConsumer(container)
	if err := consumer.handleStockAlertDispatch(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}
	pending, err := container.StockAlertRepo.ListPendingByProduct("7")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("all alerts should be notified, left %d", len(pending))
	}
}

func TestHandleStockAlertDispatchInvalidPayload(t *testing.T) {
	consumer := NewConsumer(setupWorkerTestContainer(t))

	if err := consumer.handleStockAlertDispatch(context.Background(), asynq.NewTask(queue.TaskStockAlertDispatch, []byte("{"))); err == nil {
		t.Fatalf("malformed payload should return error for retry")
	}
	if err := consumer.handleStockAlertDispatch(context.Background(), asynq.NewTask(queue.TaskStockAlertDispatch, []byte(`{"product_id":"  "}`))); err != nil {
		t.Fatalf("blank product should be skipped, got %v", err)
	}
	if err := consumer.handleStockAlertDispatch(context.Background(), nil); err != nil {
		t.Fatalf("nil task should be skipped, got %v", err)
	}
}

func TestSweepInStockOnlyDispatchesAvailableProducts(t *testing.T) {
	container := setupWorkerTestContainer(t)
	price, _ := models.NewMoneyFromString("9800")
	for _, p := range []models.Product{
		{ID: "1", Title: "Con stock", Price: price, Stock: 4},
		{ID: "2", Title: "Agotado", Price: price, Stock: 0},
	} {
		p := p
		if err := container.ProductRepo.Create(&p); err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	for _, productID := range []string{"1", "2"} {
		if _, err := container.StockAlertDispatch.Register(productID, "demo@libreria.com", time.Time{}); err != nil {
			t.Fatalf("register alert failed: %v", err)
		}
	}

	notified, err := container.StockAlertDispatch.SweepInStock(context.Background())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if notified != 1 {
		t.Fatalf("want 1 notified got %d", notified)
	}
	pending, err := container.StockAlertRepo.ListPendingByProduct("2")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("out of stock product should keep its alert pending")
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(&config.QueueConfig{Enabled: false}, &Consumer{}); err == nil {
		t.Fatalf("disabled queue should not build worker service")
	}
	if _, err := NewService(nil, &Consumer{}); err == nil {
		t.Fatalf("nil queue config should not build worker service")
	}
}

func TestRegisterSkipsNilMux(t *testing.T) {
	var consumer *Consumer
	consumer.Register(asynq.NewServeMux())
	NewConsumer(nil).Register(nil)
}
