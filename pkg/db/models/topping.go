package models

import "time"

// Topping is a priced add-on independent of the product's base composition.
type Topping struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ToppingName string    `gorm:"column:topping_name;not null"`
	PriceCents  int       `gorm:"column:price_cents;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
