package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/urano-b2b/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(Options{
		BaseURL: server.URL + "/",
		Timeout: 2 * time.Second,
		Tokens:  TokenFunc(func() string { return token }),
	})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	return client
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewClient(Options{BaseURL: "localhost"}); err == nil {
		t.Fatalf("relative base url should be rejected")
	}
	if _, err := NewClient(Options{}); err == nil {
		t.Fatalf("empty base url should be rejected")
	}
}

func TestListProductsSendsQueryAndBearer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("isNew") != "true" {
			t.Errorf("isNew should be sent, got %q", r.URL.RawQuery)
		}
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Errorf("bearer token missing, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("request id header missing")
		}
		_, _ = w.Write([]byte(`[{"id":"1","title":"Sapiens","price":22000,"stock":3,"isNew":true}]`))
	}, "tok-1")

	products, err := client.ListProducts(context.Background(), ProductQuery{OnlyNew: true})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 1 || products[0].Price.String() != "22000.00" || !products[0].IsNew {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestNoBearerWithoutSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("no authorization header expected, got %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`[]`))
	}, "")

	if _, err := client.ListProducts(context.Background(), ProductQuery{}); err != nil {
		t.Fatalf("list products failed: %v", err)
	}
}

func TestGetProductNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}, "")

	_, err := client.GetProduct(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("want APIError 404, got %v", err)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatalf("404 should not match ErrUnauthorized")
	}
}

func TestListOrdersSortParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("_sort") != "createdAt" || q.Get("_order") != "desc" || q.Get("_limit") != "3" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id":"o1","orderNumber":"1234","status":"in-preparation","items":[]}]`))
	}, "")

	orders, err := client.ListOrders(context.Background(), OrderQuery{Limit: 3})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderNumber != "1234" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestCreateOrderPostsSnapshot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("want POST got %s", r.Method)
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body failed: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Errorf("client must not send an id")
		}
		if body["observations"] != nil {
			t.Errorf("empty observations should be null, got %v", body["observations"])
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"srv-1","orderNumber":"4321","totalPrice":2500}`))
	}, "")

	created, err := client.CreateOrder(context.Background(), &models.Order{
		OrderNumber: "4321",
		TotalPrice:  models.NewMoneyFromInt(2500),
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if created.ID != "srv-1" {
		t.Fatalf("unexpected created order: %+v", created)
	}
}

func TestServerErrorReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}, "")

	err := client.CreateStockAlert(context.Background(), StockAlertRequest{ProductID: "9", UserID: "demo"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want APIError, got %v", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Body != "boom" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "")

	if _, err := client.Login(context.Background(), "a@b.c", "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}
