package service

import (
	"errors"
	"testing"
	"time"

	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/models"
	"github.com/urano-b2b/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

func newCustomerAuthForTest(t *testing.T) *CustomerAuthService {
	t.Helper()
	db := setupServiceTestDB(t)
	if err := models.InitDefaultCustomer(db, "", ""); err != nil {
		t.Fatalf("init default customer failed: %v", err)
	}
	return NewCustomerAuthService(config.JWTConfig{SecretKey: "test-secret", ExpireHours: 2}, repository.NewUserRepository(db))
}

func TestCustomerLoginIssuesToken(t *testing.T) {
	svc := newCustomerAuthForTest(t)
	user, token, expiresAt, err := svc.Login("DEMO@libreria.com", "demo123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "demo@libreria.com" || user.LastLoginAt == nil {
		t.Fatalf("unexpected user %+v", user)
	}
	if time.Until(expiresAt) < time.Hour || time.Until(expiresAt) > 2*time.Hour {
		t.Fatalf("unexpected expiry %s", expiresAt)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	identity := claims.Identity()
	if identity.Email != "demo@libreria.com" || identity.Role != "customer" {
		t.Fatalf("unexpected claims %+v", identity)
	}
}

func TestCustomerLoginRejectsBadCredentials(t *testing.T) {
	svc := newCustomerAuthForTest(t)
	if _, _, _, err := svc.Login("demo@libreria.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nadie@libreria.com", "demo123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials for unknown user got %v", err)
	}
}

func TestCustomerParseJWTRejectsInvalidTokens(t *testing.T) {
	svc := newCustomerAuthForTest(t)
	user := &models.User{Email: "demo@libreria.com"}

	other := NewCustomerAuthService(config.JWTConfig{SecretKey: "other"}, nil)
	foreign, _, err := other.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := svc.ParseJWT(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("token signed with another secret should fail, got %v", err)
	}

	svc.now = func() time.Time { return time.Now().Add(-72 * time.Hour) }
	expired, _, err := svc.GenerateJWT(user)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	svc.now = time.Now
	if _, err := svc.ParseJWT(expired); !errors.Is(err, ErrInvalidToken) || !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expired token should fail, got %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "x@y.com"})
	raw, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := svc.ParseJWT(raw); err == nil {
		t.Fatalf("unsigned token should fail")
	}
}
