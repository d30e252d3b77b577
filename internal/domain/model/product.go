package model

import "time"

// SizeStock is one (size, quantity-available) entry of a product.
// Stock is tracked per garment size ("1", "2", "3") and never
// borrowed across sizes.
type SizeStock struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID string `gorm:"type:varchar(64);not null;index" json:"-"`
	Size      string `gorm:"type:varchar(10);not null" json:"size"`
	InStock   int64  `gorm:"not null" json:"inStock"`
}

// Product is read-only for the storefront; it is created/edited only
// through the admin endpoints.
// Discount is a percent in [0,100); 0 means no discount.
// A product without size entries has no size concept and cannot be
// purchased, but it is still listable.
type Product struct {
	ID          string      `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Price       int64       `gorm:"not null" json:"price"`
	Description string      `gorm:"type:text" json:"description"`
	Image       string      `gorm:"type:text" json:"image"`
	Brand       string      `gorm:"type:varchar(100)" json:"brand"`
	Category    string      `gorm:"type:varchar(100)" json:"category,omitempty"`
	Discount    int64       `gorm:"not null;default:0" json:"discount,omitempty"`
	Sizes       []SizeStock `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"sizes"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"-"`
}
