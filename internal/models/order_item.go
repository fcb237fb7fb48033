package models

// OrderItem 订单项表（商品快照）
type OrderItem struct {
	ID        uint   `gorm:"primarykey" json:"-"`                                   // 主键
	OrderID   string `gorm:"type:varchar(64);index;not null" json:"-"`              // 订单ID
	ProductID string `gorm:"type:varchar(64);index;not null" json:"productId"`      // 商品ID
	ISBN      string `gorm:"type:varchar(32)" json:"isbn"`                          // ISBN 快照
	Title     string `json:"title"`                                                 // 书名快照
	Author    string `json:"author"`                                                // 作者快照
	Sello     string `gorm:"type:varchar(64)" json:"sello"`                         // 出版社快照
	Price     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"price"`    // 单价快照
	Quantity  int    `gorm:"not null" json:"quantity"`                              // 数量
	Subtotal  Money  `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"` // 小计
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
