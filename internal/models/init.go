package models

import (
	"strings"

	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultCustomerEmail    = "demo@libreria.com"
	defaultCustomerPassword = "demo123"
)

// InitDefaultCustomer 初始化默认批发客户账号（已存在时跳过）
func InitDefaultCustomer(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = defaultCustomerEmail
	}
	if password == "" {
		password = defaultCustomerPassword
	}

	var count int64
	if err := db.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := User{
		Email:        email,
		Name:         constants.DefaultFallbackName,
		Role:         constants.UserRoleCustomer,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	if password == defaultCustomerPassword {
		logger.Warnw("default_customer_created_with_default_password", "email", email)
	} else {
		logger.Infow("default_customer_created", "email", email, "password_hidden", true)
	}
	return nil
}
