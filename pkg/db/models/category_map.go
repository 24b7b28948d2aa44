package models

// CategoryMap is one swappable slot of a menu position: the set of products
// the slot can hold, the default product, and a display-only discount figure.
type CategoryMap struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MenuPositionID   int64     `gorm:"column:menu_position_id;not null;index"`
	CategoryID       int64     `gorm:"column:category_id;not null"`
	DiscountPercent  int       `gorm:"column:discount_percent;not null;default:0"`
	DefaultProductID int64     `gorm:"column:default_product_id;not null"`
	Position         int       `gorm:"column:position;not null;default:0"`
	Products         []Product `gorm:"many2many:category_map_products"`
}
