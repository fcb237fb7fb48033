package repository

import (
	"testing"
	"time"

	"github.com/urano-b2b/internal/models"
)

func TestStockAlertRepositoryPendingAndMarkNotified(t *testing.T) {
	db := setupRepositoryTestDB(t)
	repo := NewStockAlertRepository(db)

	for _, alert := range []models.StockAlert{
		{ProductID: "2", UserID: "demo@libreria.com"},
		{ProductID: "2", UserID: "otro@libreria.com"},
		{ProductID: "3", UserID: "demo@libreria.com"},
	} {
		alert := alert
		if err := repo.Create(&alert); err != nil {
			t.Fatalf("create alert failed: %v", err)
		}
	}

	productIDs, err := repo.ListPendingProductIDs()
	if err != nil {
		t.Fatalf("list pending product ids failed: %v", err)
	}
	if len(productIDs) != 2 || productIDs[0] != "2" || productIDs[1] != "3" {
		t.Fatalf("unexpected pending product ids: %v", productIDs)
	}

	pending, err := repo.ListPendingByProduct("2")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending want 2 got %d", len(pending))
	}

	affected, err := repo.MarkNotified([]uint{pending[0].ID, pending[1].ID}, time.Now())
	if err != nil {
		t.Fatalf("mark notified failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("affected want 2 got %d", affected)
	}

	again, err := repo.MarkNotified([]uint{pending[0].ID}, time.Now())
	if err != nil {
		t.Fatalf("mark notified again failed: %v", err)
	}
	if again != 0 {
		t.Fatalf("already notified alerts should not be updated again")
	}

	remaining, err := repo.ListPendingByProduct("2")
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("no pending alerts expected, got %d", len(remaining))
	}

	if affected, err := repo.MarkNotified(nil, time.Now()); err != nil || affected != 0 {
		t.Fatalf("empty mark should be a no-op, got %d %v", affected, err)
	}
}
