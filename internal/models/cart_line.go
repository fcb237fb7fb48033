package models

// CartLine 购物车行（加入购物车时的商品快照）
type CartLine struct {
	ID            uint   `gorm:"primarykey" json:"-"`                                    // 主键
	Position      int    `gorm:"not null;index" json:"-"`                                // 插入顺序
	ProductID     string `gorm:"type:varchar(64);uniqueIndex;not null" json:"productId"` // 商品ID（购物车内唯一）
	ISBN          string `gorm:"type:varchar(32)" json:"isbn"`                           // ISBN 快照
	Title         string `json:"title"`                                                  // 书名快照
	Author        string `json:"author"`                                                 // 作者快照
	Sello         string `gorm:"type:varchar(64)" json:"sello"`                          // 出版社快照
	UnitPrice     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"unitPrice"` // 单价快照
	CoverImageURL string `gorm:"type:varchar(512)" json:"coverImageUrl,omitempty"`       // 封面快照
	Quantity      int    `gorm:"not null" json:"quantity"`                               // 数量（>= 1）
}

// TableName 指定表名
func (CartLine) TableName() string {
	return "cart_lines"
}

// Subtotal 行小计
func (l CartLine) Subtotal() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// NewCartLine 从商品创建购物车行快照
func NewCartLine(product Product, quantity int) CartLine {
	return CartLine{
		ProductID:     product.ID,
		ISBN:          product.ISBN,
		Title:         product.Title,
		Author:        product.Author,
		Sello:         product.Sello,
		UnitPrice:     product.Price,
		CoverImageURL: product.CoverImage,
		Quantity:      quantity,
	}
}
