package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/urano-b2b/internal/backend"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/repository"
)

// LoginInput 登录参数
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService 客户端会话服务
type AuthService struct {
	mu       sync.RWMutex
	repo     repository.SessionRepository
	provider AuthProvider
	session  *models.Session
	now      func() time.Time
}

// NewAuthService 创建会话服务并加载本地会话（已过期的会话会被丢弃）
func NewAuthService(repo repository.SessionRepository, provider AuthProvider) (*AuthService, error) {
	s := &AuthService{repo: repo, provider: provider, now: time.Now}
	if repo == nil {
		return s, nil
	}
	session, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load session failed: %w", err)
	}
	if session != nil && s.expired(session) {
		logger.Infow("auth_session_expired", "email", session.Email, "expires_at", session.ExpiresAt)
		if err := repo.Clear(); err != nil {
			logger.Warnw("auth_session_clear_failed", "error", err)
		}
		session = nil
	}
	s.session = session
	return s, nil
}

// Login 登录并持久化会话
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Identity, error) {
	input := LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}
	if err := validateStruct(input); err != nil {
		return models.Identity{}, err
	}
	if s.provider == nil {
		return models.Identity{}, ErrBackendUnavailable
	}
	result, err := s.provider.Login(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			logger.Infow("auth_login_rejected", "email", input.Email)
			return models.Identity{}, ErrInvalidCredentials
		}
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	if result == nil || strings.TrimSpace(result.Token) == "" {
		return models.Identity{}, fmt.Errorf("%w: respuesta de login sin token", ErrBackendUnavailable)
	}

	identity := result.User
	if identity.Email == "" {
		identity.Email = input.Email
	}
	session := &models.Session{
		Email:     identity.Email,
		Name:      identity.Name,
		Role:      identity.Role,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repo != nil {
		if err := s.repo.Save(session); err != nil {
			return models.Identity{}, fmt.Errorf("%w: %w", ErrSessionPersistFailed, err)
		}
	}
	s.session = session
	logger.Infow("auth_login_success", "email", identity.Email)
	return identity, nil
}

// Logout 清除会话（购物车保留）
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repo != nil {
		if err := s.repo.Clear(); err != nil {
			return fmt.Errorf("%w: %w", ErrSessionPersistFailed, err)
		}
	}
	if s.session != nil {
		logger.Infow("auth_logout", "email", s.session.Email)
	}
	s.session = nil
	return nil
}

// CurrentUser 当前登录身份
func (s *AuthService) CurrentUser() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil || s.expired(s.session) {
		return models.Identity{}, false
	}
	return s.session.Identity(), true
}

// IsAuthenticated 是否已登录
func (s *AuthService) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Token 当前 Bearer Token，未登录时为空
func (s *AuthService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil || s.expired(s.session) {
		return ""
	}
	return s.session.Token
}

func (s *AuthService) expired(session *models.Session) bool {
	return !session.ExpiresAt.IsZero() && !s.now().Before(session.ExpiresAt)
}
