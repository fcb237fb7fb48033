package models

import (
	"time"
)

// Order 订单表（下单时的快照，创建后客户端不再修改）
type Order struct {
	ID            string      `gorm:"primarykey;type:varchar(64)" json:"id,omitempty"`         // 主键（后端分配）
	OrderNumber   string      `gorm:"type:varchar(16);index;not null" json:"orderNumber"`      // 展示用订单号（4 位数字，不保证唯一）
	CustomerID    string      `gorm:"type:varchar(255);index;not null" json:"customerId"`      // 客户标识
	CustomerName  string      `gorm:"type:varchar(255)" json:"customerName"`                   // 客户名称
	Status        string      `gorm:"type:varchar(32);index;not null" json:"status"`           // 订单状态
	TotalItems    int         `gorm:"not null;default:0" json:"totalItems"`                    // 总数量
	TotalPrice    Money       `gorm:"type:decimal(20,2);not null;default:0" json:"totalPrice"` // 总金额
	Observations  *string     `gorm:"type:text" json:"observations"`                           // 备注（空为 null）
	InvoiceNumber string      `gorm:"type:varchar(64)" json:"invoiceNumber,omitempty"`         // 发票号
	InvoiceURL    string      `gorm:"type:varchar(512)" json:"invoiceUrl,omitempty"`           // 发票下载地址
	CreatedAt     time.Time   `gorm:"index" json:"createdAt"`                                  // 创建时间
	UpdatedAt     time.Time   `json:"-"`                                                       // 更新时间
	Items         []OrderItem `gorm:"foreignKey:OrderID" json:"items"`                         // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// DisplayNumber 返回带 # 前缀的订单号
func (o Order) DisplayNumber() string {
	return "#" + o.OrderNumber
}
