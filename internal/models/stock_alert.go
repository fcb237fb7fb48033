package models

import (
	"time"
)

// StockAlert 到货提醒登记
type StockAlert struct {
	ID         uint       `gorm:"primarykey" json:"id"`                             // 主键
	ProductID  string     `gorm:"type:varchar(64);index;not null" json:"productId"` // 商品ID
	UserID     string     `gorm:"type:varchar(255);index;not null" json:"userId"`   // 登记用户
	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`                           // 登记时间
	NotifiedAt *time.Time `gorm:"index" json:"notifiedAt,omitempty"`                // 通知时间
}

// TableName 指定表名
func (StockAlert) TableName() string {
	return "stock_alerts"
}
