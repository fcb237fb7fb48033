package models

import (
	"time"
)

// User 批发客户账号
type User struct {
	ID           uint       `gorm:"primarykey" json:"-"`                             // 主键
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`               // 邮箱
	Name         string     `gorm:"default:''" json:"name"`                          // 显示名称
	Role         string     `gorm:"type:varchar(32);default:'customer'" json:"role"` // 角色
	PasswordHash string     `gorm:"not null" json:"-"`                               // 密码哈希（不返回给前端）
	LastLoginAt  *time.Time `json:"-"`                                               // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"-"`                                  // 创建时间
	UpdatedAt    time.Time  `json:"-"`                                               // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
