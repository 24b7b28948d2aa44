package models

import "time"

// Ingredient is baked into a product's base composition. Optional ingredients
// can be removed by the customer at no price change; non-optional ones cannot.
type Ingredient struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	IngredientName    string    `gorm:"column:ingredient_name;not null"`
	IncludedByDefault bool      `gorm:"column:included_by_default;not null;default:true"`
	Optional          bool      `gorm:"column:optional;not null;default:true"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
