package models

// ProductVariation is one size tier of a product. Position preserves catalog
// order; the storefront defaults to the second tier when more than one exists.
type ProductVariation struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID   int64  `gorm:"column:product_id;not null;index"`
	Size        string `gorm:"column:size;not null"`
	WeightGrams int    `gorm:"column:weight_grams;not null"`
	PriceCents  int    `gorm:"column:price_cents;not null"`
	Position    int    `gorm:"column:position;not null;default:0"`
}
