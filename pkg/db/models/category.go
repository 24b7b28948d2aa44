package models

import "time"

// Category groups menu positions on the storefront. Unlisted categories hold
// supporting products (sauces in a combo) that never render as a tab.
type Category struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CategoryName string    `gorm:"column:category_name;not null"`
	Listed       bool      `gorm:"column:listed;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
