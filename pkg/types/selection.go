package types

// ProductConfig is the per-product customization inside a slot: which
// variation is picked, which default ingredients the customer removed and
// which paid toppings they added. Removing an ingredient never changes the
// price; toppings are additive surcharges.
type ProductConfig struct {
	VariationID           int64   `json:"variation_id"`
	ExcludedIngredientIDs []int64 `json:"excluded_ingredient_ids"`
	IncludedToppingIDs    []int64 `json:"included_topping_ids"`
}

// SlotSelection captures the state of one slot (category map) of a menu
// position. PerProduct keeps an independent ProductConfig for every product
// the slot can hold, so swapping back and forth between alternatives keeps
// prior edits.
type SlotSelection struct {
	SlotID          int64                    `json:"slot_id"`
	ChosenProductID int64                    `json:"chosen_product_id"`
	PerProduct      map[int64]*ProductConfig `json:"per_product"`
}

// Config returns the ProductConfig for the currently chosen product.
func (s *SlotSelection) Config() (*ProductConfig, bool) {
	if s == nil || s.PerProduct == nil {
		return nil, false
	}
	cfg, ok := s.PerProduct[s.ChosenProductID]
	if !ok || cfg == nil {
		return nil, false
	}
	return cfg, true
}

// OrderSlots is the JSONB shape persisted on a cart line.
type OrderSlots []SlotSelection
