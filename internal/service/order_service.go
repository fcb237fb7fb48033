package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/urano-b2b/internal/async"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/notify"
)

// OrderNumberGenerator 订单号生成器
type OrderNumberGenerator func() (string, error)

// RandomOrderNumber 生成 [1000, 9999] 区间的 4 位数字订单号（不保证唯一）
func RandomOrderNumber() (string, error) {
	span := big.NewInt(int64(constants.OrderNumberMax - constants.OrderNumberMin + 1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("generate order number failed: %w", err)
	}
	return strconv.FormatInt(n.Int64()+constants.OrderNumberMin, 10), nil
}

// OrderServiceOptions 订单服务依赖
type OrderServiceOptions struct {
	Cart                 *CartService
	Identity             IdentitySource
	Orders               OrderGateway
	Products             ProductDirectory
	Tasks                *async.Group
	Notifier             notify.Notifier
	Navigator            notify.Navigator
	NumberGenerator      OrderNumberGenerator
	Clock                func() time.Time
	FallbackCustomerID   string
	FallbackCustomerName string
	MaxObservations      int
}

// OrderService 下单、订单历史与再次下单
type OrderService struct {
	cart            *CartService
	identity        IdentitySource
	orders          OrderGateway
	products        ProductDirectory
	tasks           *async.Group
	notifier        notify.Notifier
	navigator       notify.Navigator
	nextNumber      OrderNumberGenerator
	now             func() time.Time
	fallbackID      string
	fallbackName    string
	maxObservations int
}

// NewOrderService 创建订单服务
func NewOrderService(opts OrderServiceOptions) *OrderService {
	s := &OrderService{
		cart:            opts.Cart,
		identity:        opts.Identity,
		orders:          opts.Orders,
		products:        opts.Products,
		tasks:           opts.Tasks,
		notifier:        opts.Notifier,
		navigator:       opts.Navigator,
		nextNumber:      opts.NumberGenerator,
		now:             opts.Clock,
		fallbackID:      strings.TrimSpace(opts.FallbackCustomerID),
		fallbackName:    strings.TrimSpace(opts.FallbackCustomerName),
		maxObservations: opts.MaxObservations,
	}
	if s.tasks == nil {
		s.tasks = async.NewGroup()
	}
	if s.notifier == nil {
		s.notifier = notify.LogNotifier{}
	}
	if s.navigator == nil {
		s.navigator = notify.LogNotifier{}
	}
	if s.nextNumber == nil {
		s.nextNumber = RandomOrderNumber
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.fallbackID == "" {
		s.fallbackID = constants.DefaultFallbackUserID
	}
	if s.fallbackName == "" {
		s.fallbackName = constants.DefaultFallbackName
	}
	if s.maxObservations <= 0 {
		s.maxObservations = constants.MaxObservationsLength
	}
	return s
}

// SubmitOrderInput 下单参数
type SubmitOrderInput struct {
	Observations string
}

// SubmitOrderResult 下单结果
type SubmitOrderResult struct {
	Order       *models.Order
	OrderNumber string
}

// OrderSubmission 进行中的下单任务
type OrderSubmission struct {
	// OrderNumber 本次提交的订单号（不含 #）
	OrderNumber string
	// Snapshot 提交的订单快照
	Snapshot *models.Order

	task   *async.Task
	result *SubmitOrderResult
}

// Done 任务完成信号
func (s *OrderSubmission) Done() <-chan struct{} {
	return s.task.Done()
}

// Wait 等待提交结束
func (s *OrderSubmission) Wait() (*SubmitOrderResult, error) {
	if err := s.task.Wait(); err != nil {
		return nil, err
	}
	return s.result, nil
}

// orderDraft 提交前的快照校验
type orderDraft struct {
	OrderNumber  string            `json:"orderNumber" validate:"required,numeric,len=4"`
	CustomerID   string            `json:"customerId" validate:"required"`
	Observations string            `json:"observations"`
	Items        []orderDraftEntry `json:"items" validate:"required,min=1,dive"`
}

type orderDraftEntry struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// SubmitOrder 提交订单并等待结果
func (s *OrderService) SubmitOrder(ctx context.Context, input SubmitOrderInput) (*SubmitOrderResult, error) {
	submission, err := s.BeginSubmitOrder(ctx, input)
	if err != nil {
		return nil, err
	}
	return submission.Wait()
}

// BeginSubmitOrder 校验购物车与备注，构建快照后异步提交
// 校验失败时不发起请求，购物车保持不变。
func (s *OrderService) BeginSubmitOrder(ctx context.Context, input SubmitOrderInput) (*OrderSubmission, error) {
	lines := s.cart.Items()
	if len(lines) == 0 {
		s.notifier.Error(ErrCartEmpty.Error())
		return nil, ErrCartEmpty
	}
	observations, err := s.normalizeObservations(input.Observations)
	if err != nil {
		s.notifier.Error(err.Error())
		return nil, err
	}
	number, err := s.nextNumber()
	if err != nil {
		s.notifier.Error(msgOrderSubmitFailed)
		return nil, fmt.Errorf("%w: %w", ErrOrderSubmitFailed, err)
	}
	snapshot := s.buildSnapshot(number, lines, observations)
	if err := validateStruct(draftOf(snapshot)); err != nil {
		s.notifier.Error(msgOrderSubmitFailed)
		return nil, err
	}

	submission := &OrderSubmission{OrderNumber: number, Snapshot: snapshot}
	submission.task = s.tasks.Go(ctx, func(taskCtx context.Context) error {
		created, err := s.orders.CreateOrder(taskCtx, snapshot)
		if err != nil {
			logger.Warnw("order_submit_failed",
				"order_number", number,
				"total_items", snapshot.TotalItems,
				"error", err,
			)
			s.notifier.Error(msgOrderSubmitFailed)
			return fmt.Errorf("%w: %w", ErrOrderSubmitFailed, err)
		}
		if created == nil || created.OrderNumber == "" {
			created = snapshot
		}
		submission.result = &SubmitOrderResult{Order: created, OrderNumber: number}
		logger.Infow("order_submitted",
			"order_id", created.ID,
			"order_number", number,
			"total_items", snapshot.TotalItems,
			"total_price", snapshot.TotalPrice.String(),
		)
		s.notifier.Success(msgOrderConfirmed(snapshot.DisplayNumber()))
		s.navigator.Navigate(constants.ViewOrders)
		if err := s.cart.ClearCart(); err != nil {
			logger.Warnw("order_cart_clear_failed", "order_number", number, "error", err)
		}
		return nil
	})
	return submission, nil
}

// normalizeObservations 去除首尾空白，空串返回 nil
func (s *OrderService) normalizeObservations(raw string) (*string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if err := validate.Var(trimmed, "max="+strconv.Itoa(s.maxObservations)); err != nil {
		return nil, ErrObservationsTooLong
	}
	return &trimmed, nil
}

func (s *OrderService) buildSnapshot(number string, lines []models.CartLine, observations *string) *models.Order {
	customerID, customerName := s.fallbackID, s.fallbackName
	if s.identity != nil {
		if identity, ok := s.identity.CurrentUser(); ok {
			if identity.Email != "" {
				customerID = identity.Email
			}
			if identity.Name != "" {
				customerName = identity.Name
			}
		}
	}
	order := &models.Order{
		OrderNumber:  number,
		CustomerID:   customerID,
		CustomerName: customerName,
		Status:       constants.OrderStatusInPreparation,
		Observations: observations,
		CreatedAt:    s.now().UTC(),
		TotalPrice:   models.NewMoneyFromInt(0),
		Items:        make([]models.OrderItem, 0, len(lines)),
	}
	for _, line := range lines {
		subtotal := line.Subtotal()
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			ISBN:      line.ISBN,
			Title:     line.Title,
			Author:    line.Author,
			Sello:     line.Sello,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		order.TotalItems += line.Quantity
		order.TotalPrice = order.TotalPrice.Add(subtotal)
	}
	return order
}

func draftOf(order *models.Order) orderDraft {
	draft := orderDraft{
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Items:       make([]orderDraftEntry, 0, len(order.Items)),
	}
	if order.Observations != nil {
		draft.Observations = *order.Observations
	}
	for _, item := range order.Items {
		draft.Items = append(draft.Items, orderDraftEntry{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return draft
}

// IsRetryable 是否为可重试的暂时性失败（状态未变更）
func IsRetryable(err error) bool {
	return errors.Is(err, ErrOrderSubmitFailed) || errors.Is(err, ErrBackendUnavailable)
}
