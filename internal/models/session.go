package models

import (
	"time"
)

// Identity 当前登录身份
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session 客户端持久化会话（单行）
type Session struct {
	ID        uint      `gorm:"primarykey" json:"-"`          // 主键
	Email     string    `gorm:"not null" json:"email"`        // 邮箱
	Name      string    `json:"name"`                         // 显示名称
	Role      string    `gorm:"type:varchar(32)" json:"role"` // 角色
	Token     string    `gorm:"type:text" json:"-"`           // Bearer Token
	ExpiresAt time.Time `json:"expiresAt"`                    // 过期时间
	CreatedAt time.Time `json:"-"`                            // 创建时间
}

// TableName 指定表名
func (Session) TableName() string {
	return "sessions"
}

// Identity 返回会话身份
func (s Session) Identity() Identity {
	return Identity{Email: s.Email, Name: s.Name, Role: s.Role}
}

// StockAlertMark 本地到货提醒记录
type StockAlertMark struct {
	ProductID string    `gorm:"primarykey;type:varchar(64)" json:"productId"` // 商品ID
	CreatedAt time.Time `json:"createdAt"`                                    // 登记时间
}

// TableName 指定表名
func (StockAlertMark) TableName() string {
	return "stock_alert_marks"
}
