package models

import "time"

// MenuPosition is a purchasable catalog entry. One category map means a plain
// product; several mean a combo.
type MenuPosition struct {
	ID               int64         `gorm:"column:id;primaryKey;autoIncrement"`
	MenuPositionName string        `gorm:"column:menu_position_name;not null"`
	Description      *string       `gorm:"column:description"`
	CategoryID       int64         `gorm:"column:category_id;not null;index"`
	CategoryMaps     []CategoryMap `gorm:"foreignKey:MenuPositionID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
