package models

import (
	"time"
)

// Product 商品表（图书）
type Product struct {
	ID          string    `gorm:"primarykey;type:varchar(64)" json:"id"`              // 主键
	ISBN        string    `gorm:"type:varchar(32);index" json:"isbn"`                 // ISBN
	Title       string    `gorm:"not null" json:"title"`                              // 书名
	Author      string    `gorm:"index" json:"author"`                                // 作者
	Sello       string    `gorm:"type:varchar(64);index" json:"sello"`                // 出版社（sello）
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 批发价
	Stock       int       `gorm:"not null;default:0" json:"stock"`                    // 库存
	IsNew       bool      `gorm:"index;default:false" json:"isNew"`                   // 是否新书
	CoverImage  string    `gorm:"type:varchar(512)" json:"coverImage,omitempty"`      // 封面地址
	Description string    `gorm:"type:text" json:"description,omitempty"`             // 简介
	Pages       int       `gorm:"default:0" json:"pages,omitempty"`                   // 页数
	Language    string    `gorm:"type:varchar(32)" json:"language,omitempty"`         // 语言
	Format      string    `gorm:"type:varchar(32)" json:"format,omitempty"`           // 装帧
	CreatedAt   time.Time `gorm:"index" json:"-"`                                     // 创建时间
	UpdatedAt   time.Time `json:"-"`                                                  // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// InStock 是否有货
func (p Product) InStock() bool {
	return p.Stock > 0
}
