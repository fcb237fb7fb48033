package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/urano-b2b/internal/async"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/notify"
)

type orderFixture struct {
	cart     *CartService
	cartRepo *memCartRepo
	backend  *fakeBackend
	recorder *notify.Recorder
	tasks    *async.Group
	service  *OrderService
}

func newOrderFixture(t *testing.T, identity IdentitySource) *orderFixture {
	t.Helper()
	cartRepo := &memCartRepo{}
	cart, err := NewCartService(cartRepo)
	if err != nil {
		t.Fatalf("new cart failed: %v", err)
	}
	fake := newFakeBackend(
		testProduct(t, "1", "El poder del ahora", "15000", 10),
		testProduct(t, "2", "Sapiens", "22000.50", 3),
	)
	recorder := &notify.Recorder{}
	tasks := async.NewGroup()
	t.Cleanup(tasks.Close)
	svc := NewOrderService(OrderServiceOptions{
		Cart:            cart,
		Identity:        identity,
		Orders:          fake,
		Products:        fake,
		Tasks:           tasks,
		Notifier:        recorder,
		Navigator:       recorder,
		NumberGenerator: func() (string, error) { return "4821", nil },
		Clock:           fixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
	})
	return &orderFixture{cart: cart, cartRepo: cartRepo, backend: fake, recorder: recorder, tasks: tasks, service: svc}
}

func (f *orderFixture) fill(t *testing.T) {
	t.Helper()
	p1, _ := f.backend.GetProduct(context.Background(), "1")
	p2, _ := f.backend.GetProduct(context.Background(), "2")
	if err := f.cart.AddItem(*p1, 2); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := f.cart.AddItem(*p2, 1); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t, nil)
	_, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
	if len(f.backend.createdOrders()) != 0 {
		t.Fatalf("empty cart should not call the backend")
	}
	if _, ok := f.recorder.Last(notify.KindError); !ok {
		t.Fatalf("empty cart should notify an error")
	}
}

func TestSubmitOrderSuccess(t *testing.T) {
	f := newOrderFixture(t, staticIdentity{identity: models.Identity{Email: "compras@ateneo.com", Name: "El Ateneo"}, ok: true})
	f.fill(t)

	result, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{Observations: "  entregar por la tarde  "})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.OrderNumber != "4821" {
		t.Fatalf("want order number 4821 got %s", result.OrderNumber)
	}
	created := f.backend.createdOrders()
	if len(created) != 1 {
		t.Fatalf("want 1 created order got %d", len(created))
	}
	order := created[0]
	if order.CustomerID != "compras@ateneo.com" || order.CustomerName != "El Ateneo" {
		t.Fatalf("unexpected customer: %s / %s", order.CustomerID, order.CustomerName)
	}
	if order.Status != constants.OrderStatusInPreparation {
		t.Fatalf("unexpected status %s", order.Status)
	}
	if order.TotalItems != 3 || order.TotalPrice.String() != "52000.50" {
		t.Fatalf("unexpected totals: %d %s", order.TotalItems, order.TotalPrice)
	}
	if order.Items[0].Subtotal.String() != "30000.00" {
		t.Fatalf("unexpected subtotal %s", order.Items[0].Subtotal)
	}
	if order.Observations == nil || *order.Observations != "entregar por la tarde" {
		t.Fatalf("observations should be trimmed, got %v", order.Observations)
	}
	if !order.CreatedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("createdAt should come from the clock, got %s", order.CreatedAt)
	}
	if f.cart.TotalItems() != 0 {
		t.Fatalf("cart should be cleared after success")
	}
	success, ok := f.recorder.Last(notify.KindSuccess)
	if !ok || !strings.Contains(success.Message, "#4821") {
		t.Fatalf("success notification should carry the order number, got %+v", success)
	}
	nav, ok := f.recorder.Last(notify.KindNavigate)
	if !ok || nav.Message != constants.ViewOrders {
		t.Fatalf("should navigate to orders view, got %+v", nav)
	}
}

func TestSubmitOrderUsesFallbackIdentity(t *testing.T) {
	f := newOrderFixture(t, staticIdentity{})
	f.fill(t)
	if _, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{Observations: "   "}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	order := f.backend.createdOrders()[0]
	if order.CustomerID != constants.DefaultFallbackUserID || order.CustomerName != constants.DefaultFallbackName {
		t.Fatalf("want fallback identity got %s / %s", order.CustomerID, order.CustomerName)
	}
	if order.Observations != nil {
		t.Fatalf("blank observations should be nil")
	}
}

func TestSubmitOrderObservationsTooLong(t *testing.T) {
	f := newOrderFixture(t, nil)
	f.fill(t)
	_, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{Observations: strings.Repeat("ñ", 501)})
	if !errors.Is(err, ErrObservationsTooLong) {
		t.Fatalf("want ErrObservationsTooLong got %v", err)
	}
	if len(f.backend.createdOrders()) != 0 {
		t.Fatalf("invalid observations should not call the backend")
	}
	if _, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{Observations: strings.Repeat("ñ", 500)}); err != nil {
		t.Fatalf("500 runes should be accepted: %v", err)
	}
}

func TestSubmitOrderFailureKeepsCart(t *testing.T) {
	f := newOrderFixture(t, nil)
	f.fill(t)
	before := f.cart.Items()
	f.backend.createErr = errors.New("connection refused")

	_, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{})
	if !errors.Is(err, ErrOrderSubmitFailed) {
		t.Fatalf("want ErrOrderSubmitFailed got %v", err)
	}
	if !IsRetryable(err) {
		t.Fatalf("submit failure should be retryable")
	}
	after := f.cart.Items()
	if len(after) != len(before) {
		t.Fatalf("cart should be unchanged")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cart line %d changed: %+v vs %+v", i, before[i], after[i])
		}
	}
	if _, ok := f.recorder.Last(notify.KindSuccess); ok {
		t.Fatalf("failure should not notify success")
	}
	if _, ok := f.recorder.Last(notify.KindNavigate); ok {
		t.Fatalf("failure should not navigate")
	}

	f.backend.createErr = nil
	if _, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{}); err != nil {
		t.Fatalf("retry should succeed: %v", err)
	}
	if f.cart.TotalItems() != 0 {
		t.Fatalf("cart should be cleared after retry")
	}
}

func TestSubmitOrderCartNotLockedDuringSubmit(t *testing.T) {
	f := newOrderFixture(t, nil)
	f.fill(t)
	f.backend.createGate = make(chan struct{})

	submission, err := f.service.BeginSubmitOrder(context.Background(), SubmitOrderInput{})
	if err != nil {
		t.Fatalf("begin submit failed: %v", err)
	}
	extra := testProduct(t, "9", "Extra", "5", 1)
	if err := f.cart.AddItem(extra, 1); err != nil {
		t.Fatalf("cart should accept changes while submitting: %v", err)
	}
	close(f.backend.createGate)
	if _, err := submission.Wait(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	order := f.backend.createdOrders()[0]
	for _, item := range order.Items {
		if item.ProductID == "9" {
			t.Fatalf("in-flight order should contain only the snapshot")
		}
	}
	if submission.Snapshot.TotalItems != 3 {
		t.Fatalf("unexpected snapshot total %d", submission.Snapshot.TotalItems)
	}
}

func TestSubmitOrderNewNumberPerAttempt(t *testing.T) {
	f := newOrderFixture(t, nil)
	numbers := []string{"1000", "9999"}
	f.service.nextNumber = func() (string, error) {
		n := numbers[0]
		numbers = numbers[1:]
		return n, nil
	}
	f.fill(t)
	f.backend.createErr = errors.New("boom")
	_, _ = f.service.SubmitOrder(context.Background(), SubmitOrderInput{})
	f.backend.createErr = nil
	result, err := f.service.SubmitOrder(context.Background(), SubmitOrderInput{})
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if result.OrderNumber != "9999" {
		t.Fatalf("retry should use a new number, got %s", result.OrderNumber)
	}
}

func TestRandomOrderNumberRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		n, err := RandomOrderNumber()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(n) != 4 || n < "1000" || n > "9999" {
			t.Fatalf("order number out of range: %s", n)
		}
	}
}

func TestCloseCancelsPendingSubmission(t *testing.T) {
	f := newOrderFixture(t, nil)
	f.fill(t)
	f.backend.createGate = make(chan struct{})
	submission, err := f.service.BeginSubmitOrder(context.Background(), SubmitOrderInput{})
	if err != nil {
		t.Fatalf("begin submit failed: %v", err)
	}
	f.tasks.Close()
	if _, err := submission.Wait(); !errors.Is(err, ErrOrderSubmitFailed) {
		t.Fatalf("cancelled submission should fail, got %v", err)
	}
	if f.tasks.Pending() != 0 {
		t.Fatalf("no task should remain after close")
	}
	if f.cart.TotalItems() != 3 {
		t.Fatalf("cart should be kept when submission is cancelled")
	}
}
