package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/notify"
	"github.com/urano-b2b/internal/repository"
)

// AlertRegistration 到货提醒登记结果
type AlertRegistration struct {
	ProductID      string
	LocalCommitted bool
	RemoteSynced   bool
	RemoteErr      error
}

// StockAlertServiceOptions 到货提醒服务依赖
type StockAlertServiceOptions struct {
	Repo           repository.StockAlertStateRepository
	Remote         StockAlertGateway
	Identity       IdentitySource
	Notifier       notify.Notifier
	Clock          func() time.Time
	FallbackUserID string
}

// StockAlertService 本地到货提醒登记
type StockAlertService struct {
	mu         sync.Mutex
	repo       repository.StockAlertStateRepository
	remote     StockAlertGateway
	identity   IdentitySource
	notifier   notify.Notifier
	now        func() time.Time
	fallbackID string
	marked     map[string]struct{}
	order      []string
}

// NewStockAlertService 创建到货提醒服务并加载本地登记
func NewStockAlertService(opts StockAlertServiceOptions) (*StockAlertService, error) {
	s := &StockAlertService{
		repo:       opts.Repo,
		remote:     opts.Remote,
		identity:   opts.Identity,
		notifier:   opts.Notifier,
		now:        opts.Clock,
		fallbackID: strings.TrimSpace(opts.FallbackUserID),
		marked:     make(map[string]struct{}),
	}
	if s.notifier == nil {
		s.notifier = notify.LogNotifier{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.fallbackID == "" {
		s.fallbackID = constants.DefaultFallbackUserID
	}
	if s.repo != nil {
		ids, err := s.repo.Load()
		if err != nil {
			return nil, fmt.Errorf("load stock alert state failed: %w", err)
		}
		for _, id := range ids {
			s.add(id)
		}
	}
	return s, nil
}

// RegisterAlert 登记到货提醒
// 远端同步失败只记录日志，本地写入失败时回滚并返回错误。
func (s *StockAlertService) RegisterAlert(ctx context.Context, productID string) (*AlertRegistration, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("%w: productId vacío", ErrInvalidInput)
	}
	registration := &AlertRegistration{ProductID: productID}

	if s.remote != nil {
		err := s.remote.CreateStockAlert(ctx, backend.StockAlertRequest{
			ProductID: productID,
			UserID:    s.userID(),
			CreatedAt: s.now().UTC(),
		})
		if err != nil {
			registration.RemoteErr = err
			logger.Warnw("stock_alert_remote_failed", "product_id", productID, "error", err)
		} else {
			registration.RemoteSynced = true
		}
	}

	if err := s.commit(productID); err != nil {
		s.notifier.Error(msgAlertFailed)
		return registration, fmt.Errorf("%w: %w", ErrAlertPersistFailed, err)
	}
	registration.LocalCommitted = true
	s.notifier.Success(constants.StockAlertSuccessToast)
	return registration, nil
}

// IsNotified 是否已登记
func (s *StockAlertService) IsNotified(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.marked[productID]
	return ok
}

// List 已登记商品 ID（排序后）
func (s *StockAlertService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	sort.Strings(out)
	return out
}

func (s *StockAlertService) commit(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.marked[productID]; ok {
		return nil
	}
	s.add(productID)
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(append([]string(nil), s.order...)); err != nil {
		delete(s.marked, productID)
		s.order = s.order[:len(s.order)-1]
		return err
	}
	return nil
}

func (s *StockAlertService) add(productID string) {
	if _, ok := s.marked[productID]; ok {
		return
	}
	s.marked[productID] = struct{}{}
	s.order = append(s.order, productID)
}

func (s *StockAlertService) userID() string {
	if s.identity != nil {
		if identity, ok := s.identity.CurrentUser(); ok && identity.Email != "" {
			return identity.Email
		}
	}
	return s.fallbackID
}
