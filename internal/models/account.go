package models

import (
	"time"
)

// Account 客户账户（余额、授信额度、发票）
type Account struct {
	ID             uint      `gorm:"primarykey" json:"-"`                                         // 主键
	CustomerID     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"customerId"`    // 客户标识
	CurrentBalance Money     `gorm:"type:decimal(20,2);not null;default:0" json:"currentBalance"` // 当前余额
	CreditLimit    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"creditLimit"`    // 授信额度
	Status         string    `gorm:"type:varchar(32);not null" json:"status"`                     // 账户状态
	Invoices       []Invoice `gorm:"foreignKey:AccountID" json:"invoices"`                        // 发票列表
	UpdatedAt      time.Time `json:"-"`                                                           // 更新时间
}

// TableName 指定表名
func (Account) TableName() string {
	return "accounts"
}

// Invoice 发票
type Invoice struct {
	ID        string    `gorm:"primarykey;type:varchar(64)" json:"id"`               // 发票号
	AccountID uint      `gorm:"index;not null" json:"-"`                             // 账户ID
	Date      time.Time `gorm:"index" json:"date"`                                   // 开票日期
	Amount    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"amount"` // 金额
}

// TableName 指定表名
func (Invoice) TableName() string {
	return "invoices"
}
