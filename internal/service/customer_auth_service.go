package service

import (
	"errors"
	"strings"
	"time"

	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken token 无效或已过期
var ErrInvalidToken = errors.New("token inválido")

// CustomerAuthService 客户登录与 JWT 签发（mock 后端）
type CustomerAuthService struct {
	cfg      config.JWTConfig
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewCustomerAuthService 创建客户认证服务
func NewCustomerAuthService(cfg config.JWTConfig, userRepo repository.UserRepository) *CustomerAuthService {
	return &CustomerAuthService{cfg: cfg, userRepo: userRepo, now: time.Now}
}

// CustomerJWTClaims 客户 JWT 声明
type CustomerJWTClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Identity 声明中的身份
func (c *CustomerJWTClaims) Identity() models.Identity {
	return models.Identity{Email: c.Email, Name: c.Name, Role: c.Role}
}

// Login 校验邮箱密码并签发 token
func (s *CustomerAuthService) Login(email, password string) (*models.User, string, time.Time, error) {
	input := LoginInput{Email: strings.ToLower(strings.TrimSpace(email)), Password: password}
	if err := validateStruct(input); err != nil {
		return nil, "", time.Time{}, err
	}
	user, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	now := s.now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		logger.Warnw("customer_last_login_update_failed", "email", user.Email, "error", err)
	}
	user.LastLoginAt = &now
	return user, token, expiresAt, nil
}

// GenerateJWT 生成客户 JWT Token
func (s *CustomerAuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	hours := s.cfg.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	now := s.now()
	expiresAt := now.Add(time.Duration(hours) * time.Hour)
	role := user.Role
	if role == "" {
		role = constants.UserRoleCustomer
	}
	claims := CustomerJWTClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析客户 JWT Token
func (s *CustomerAuthService) ParseJWT(tokenString string) (*CustomerJWTClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	claims := &CustomerJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims, ok := token.Claims.(*CustomerJWTClaims); ok && token.Valid && claims.Email != "" {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
