package service

import (
	"context"
	"errors"
	"testing"

	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/notify"
)

func TestCatalogGetProductWithRelated(t *testing.T) {
	base := testProduct(t, "1", "Base", "10", 3)
	sameAuthor := testProduct(t, "2", "Mismo autor", "10", 1)
	sameAuthor.Author = base.Author
	sameAuthor.Sello = "Kepler"
	outOfStock := testProduct(t, "3", "Agotado", "10", 0)
	outOfStock.Sello = base.Sello
	unrelated := testProduct(t, "4", "Otro", "10", 5)
	unrelated.Sello = "Debate"
	fake := newFakeBackend(base, sameAuthor, outOfStock, unrelated)
	for _, id := range []string{"5", "6", "7", "8"} {
		p := testProduct(t, id, "Serie "+id, "10", 2)
		fake.products[id] = p
	}

	svc := NewCatalogService(fake, nil, &notify.Recorder{})
	detail, err := svc.GetProduct(context.Background(), "1")
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if detail.Product.ID != "1" {
		t.Fatalf("unexpected product %s", detail.Product.ID)
	}
	if len(detail.Related) != 4 {
		t.Fatalf("want 4 related got %d", len(detail.Related))
	}
	for _, p := range detail.Related {
		if p.ID == "1" || p.ID == "3" || p.ID == "4" {
			t.Fatalf("unexpected related product %s", p.ID)
		}
	}
}

func TestCatalogGetProductNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeBackend(), nil, nil)
	if _, err := svc.GetProduct(context.Background(), "404"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
}

func TestCatalogAddToCartClampsToStock(t *testing.T) {
	cart, _ := NewCartService(&memCartRepo{})
	recorder := &notify.Recorder{}
	svc := NewCatalogService(newFakeBackend(), cart, recorder)

	book := testProduct(t, "1", "Sapiens", "10", 3)
	added, err := svc.AddToCart(book, 10)
	if err != nil || added != 3 {
		t.Fatalf("want 3 added got %d %v", added, err)
	}
	added, _ = svc.AddToCart(book, 0)
	if added != 1 {
		t.Fatalf("quantity should clamp to 1, got %d", added)
	}
	if cart.TotalItems() != 4 {
		t.Fatalf("unexpected cart total %d", cart.TotalItems())
	}

	_, err = svc.AddToCart(models.Product{ID: "2", Title: "Agotado"}, 1)
	if !errors.Is(err, ErrProductOutOfStock) {
		t.Fatalf("want ErrProductOutOfStock got %v", err)
	}
	if _, ok := cart.Line("2"); ok {
		t.Fatalf("out of stock product should not be added")
	}
	if last, _ := recorder.Last(notify.KindError); last.Message != ErrProductOutOfStock.Error() {
		t.Fatalf("unexpected error notification %q", last.Message)
	}
}

func TestCatalogBrowseAppliesView(t *testing.T) {
	fake := newFakeBackend(testProduct(t, "1", "B", "10", 1), testProduct(t, "2", "A", "10", 1))
	svc := NewCatalogService(fake, nil, nil)
	view := NewCatalogView(12)
	page, err := svc.Browse(context.Background(), view)
	if err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	if len(page.Items) != 2 || page.Items[0].ID != "2" {
		t.Fatalf("unexpected browse page %+v", page.Items)
	}
	fake.listErr = errors.New("down")
	if _, err := svc.Browse(context.Background(), view); !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("want ErrBackendUnavailable got %v", err)
	}
}
