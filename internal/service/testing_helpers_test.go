package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var errStorageDown = errors.New("storage down")

func setupServiceTestDB(t *testing.T) *gorm.DB {
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
		t.Fatalf("migrate backend tables failed: %v", err)
	}
	if err := models.MigrateState(db); err != nil {
		t.Fatalf("migrate state tables failed: %v", err)
	}
	return db
}

func money(t *testing.T, raw string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	return m
}

func testProduct(t *testing.T, id, title, price string, stock int) models.Product {
	t.Helper()
	return models.Product{
		ID:     id,
		ISBN:   "978-84-" + id,
		Title:  title,
		Author: "Autor " + id,
		Sello:  "Urano",
		Price:  money(t, price),
		Stock:  stock,
	}
}

// memCartRepo 内存购物车存储
type memCartRepo struct {
	mu      sync.Mutex
	lines   []models.CartLine
	saves   int
	saveErr error
}

func (r *memCartRepo) Load() ([]models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.CartLine(nil), r.lines...), nil
}

func (r *memCartRepo) Save(lines []models.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.lines = append([]models.CartLine(nil), lines...)
	return nil
}

// memSessionRepo 内存会话存储
type memSessionRepo struct {
	session *models.Session
	saveErr error
	cleared int
}

func (r *memSessionRepo) Load() (*models.Session, error) {
	return r.session, nil
}

func (r *memSessionRepo) Save(session *models.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *session
	r.session = &copied
	return nil
}

func (r *memSessionRepo) Clear() error {
	r.cleared++
	r.session = nil
	return nil
}

// memAlertRepo 内存到货提醒存储
type memAlertRepo struct {
	ids     []string
	saveErr error
}

func (r *memAlertRepo) Load() ([]string, error) {
	return append([]string(nil), r.ids...), nil
}

func (r *memAlertRepo) Save(ids []string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.ids = append([]string(nil), ids...)
	return nil
}

// fakeBackend 实现全部后端接口
type fakeBackend struct {
	mu sync.Mutex

	products   map[string]models.Product
	productErr map[string]error
	listErr    error
	getCalls   map[string]int

	orders      []models.Order
	created     []*models.Order
	createErr   error
	createGate  chan struct{}
	listOrdErr  error
	account     *models.Account
	accountErr  error
	alerts      []backend.StockAlertRequest
	alertErr    error
	loginResult *backend.LoginResult
	loginErr    error
}

func newFakeBackend(products ...models.Product) *fakeBackend {
	f := &fakeBackend{
		products:   make(map[string]models.Product),
		productErr: make(map[string]error),
		getCalls:   make(map[string]int),
	}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeBackend) ListProducts(ctx context.Context, query backend.ProductQuery) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Product, 0, len(f.products))
	for _, id := range sortedKeys(f.products) {
		p := f.products[id]
		if query.OnlyNew && !p.IsNew {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeBackend) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls[id]++
	if err := f.productErr[id]; err != nil {
		return nil, err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, &backend.APIError{Method: "GET", Path: "/products/" + id, Status: 404}
	}
	return &p, nil
}

func (f *fakeBackend) ListOrders(ctx context.Context, query backend.OrderQuery) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listOrdErr != nil {
		return nil, f.listOrdErr
	}
	out := append([]models.Order(nil), f.orders...)
	return out, nil
}

func (f *fakeBackend) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if f.createGate != nil {
		select {
		case <-f.createGate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, order)
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *order
	copied.ID = fmt.Sprintf("ord-%d", len(f.created))
	f.orders = append(f.orders, copied)
	return &copied, nil
}

func (f *fakeBackend) GetAccount(ctx context.Context) (*models.Account, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return f.account, nil
}

func (f *fakeBackend) CreateStockAlert(ctx context.Context, req backend.StockAlertRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, req)
	return f.alertErr
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (*backend.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeBackend) createdOrders() []*models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Order(nil), f.created...)
}

func sortedKeys(m map[string]models.Product) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// staticIdentity 固定身份
type staticIdentity struct {
	identity models.Identity
	ok       bool
}

func (s staticIdentity) CurrentUser() (models.Identity, bool) {
	return s.identity, s.ok
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
