package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"

	"golang.org/x/sync/errgroup"
)

// 概览分区
const (
	DashboardSectionAccount     = "account"
	DashboardSectionOrders      = "orders"
	DashboardSectionNewArrivals = "new_arrivals"
)

// Dashboard 首页概览
// 单个分区加载失败时其余分区照常返回，失败原因记录在 Errors 中。
type Dashboard struct {
	Account      *models.Account
	Invoices     []models.Invoice
	OpenOrders   int
	RecentOrders []models.Order
	NewArrivals  []models.Product
	Errors       map[string]error `json:"-"`
}

// Failed 分区是否加载失败
func (d *Dashboard) Failed(section string) bool {
	if d == nil {
		return false
	}
	_, ok := d.Errors[section]
	return ok
}

// FailedSections 加载失败的分区（按名称排序）
func (d *Dashboard) FailedSections() []string {
	if d == nil || len(d.Errors) == 0 {
		return nil
	}
	sections := make([]string, 0, len(d.Errors))
	for section := range d.Errors {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections
}

// AccountService 账户概览
type AccountService struct {
	accounts AccountGateway
	orders   OrderGateway
	products ProductDirectory
}

// NewAccountService 创建账户服务
func NewAccountService(accounts AccountGateway, orders OrderGateway, products ProductDirectory) *AccountService {
	return &AccountService{accounts: accounts, orders: orders, products: products}
}

// Dashboard 并发拉取账户、订单与新书
// 账户不存在或三个分区全部失败时返回错误，否则返回已加载的部分。
func (s *AccountService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		account     *models.Account
		orders      []models.Order
		arrivals    []models.Product
		accountErr  error
		ordersErr   error
		arrivalsErr error
	)
	var eg errgroup.Group
	eg.Go(func() error {
		account, accountErr = s.accounts.GetAccount(ctx)
		return nil
	})
	eg.Go(func() error {
		orders, ordersErr = s.orders.ListOrders(ctx, backend.OrderQuery{})
		return nil
	})
	eg.Go(func() error {
		arrivals, arrivalsErr = s.products.ListProducts(ctx, backend.ProductQuery{OnlyNew: true})
		return nil
	})
	_ = eg.Wait()

	if errors.Is(accountErr, backend.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if accountErr != nil && ordersErr != nil && arrivalsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, errors.Join(accountErr, ordersErr, arrivalsErr))
	}

	dashboard := &Dashboard{}
	dashboard.record(DashboardSectionAccount, accountErr)
	dashboard.record(DashboardSectionOrders, ordersErr)
	dashboard.record(DashboardSectionNewArrivals, arrivalsErr)

	if accountErr == nil && account != nil {
		dashboard.Account = account
		dashboard.Invoices = firstN(account.Invoices, constants.DashboardInvoiceLimit)
	}
	if ordersErr == nil {
		for _, order := range orders {
			if !IsClosedStatus(order.Status) {
				dashboard.OpenOrders++
			}
		}
		dashboard.RecentOrders = firstN(orders, constants.DashboardOrderLimit)
	}
	if arrivalsErr == nil {
		dashboard.NewArrivals = firstN(arrivals, constants.DashboardNewArrivals)
	}
	return dashboard, nil
}

func (d *Dashboard) record(section string, err error) {
	if err == nil {
		return
	}
	logger.Warnw("dashboard_section_failed", "section", section, "error", err)
	if d.Errors == nil {
		d.Errors = make(map[string]error)
	}
	d.Errors[section] = fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
