package models

import "time"

// Product is a concrete item (a specific pizza, a drink) with size variations
// and the sets of ingredients/toppings eligible for customization.
type Product struct {
	ID          int64              `gorm:"column:id;primaryKey;autoIncrement"`
	ProductName string             `gorm:"column:product_name;not null"`
	Variations  []ProductVariation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Ingredients []Ingredient       `gorm:"many2many:product_ingredients"`
	Toppings    []Topping          `gorm:"many2many:product_toppings"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
