package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/slicelab/pizzeria-backend/pkg/types"
)

// CartLine is a committed, priced configuration of a menu position. The total
// is frozen at commit time; catalog changes after adding to the cart do not
// reprice the line. The unique index keeps at most one line per menu position
// within a session.
type CartLine struct {
	ID              uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartSessionID   uuid.UUID        `gorm:"column:cart_session_id;type:uuid;not null;uniqueIndex:idx_cart_lines_session_position,priority:1"`
	MenuPositionID  int64            `gorm:"column:menu_position_id;not null;uniqueIndex:idx_cart_lines_session_position,priority:2"`
	CategoryID      int64            `gorm:"column:category_id;not null"`
	PositionName    string           `gorm:"column:position_name;not null"`
	Quantity        int              `gorm:"column:quantity;not null;default:1"`
	TotalPriceCents int              `gorm:"column:total_price_cents;not null"`
	Slots           types.OrderSlots `gorm:"column:slots;type:jsonb;serializer:json"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
