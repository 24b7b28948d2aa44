package cart

import (
	cartsvc "github.com/slicelab/pizzeria-backend/internal/cart"
	"github.com/slicelab/pizzeria-backend/pkg/types"
)

type productConfigPayload struct {
	VariationID           int64   `json:"variation_id" validate:"required,gt=0"`
	ExcludedIngredientIDs []int64 `json:"excluded_ingredient_ids"`
	IncludedToppingIDs    []int64 `json:"included_topping_ids"`
}

type slotPayload struct {
	SlotID          int64                          `json:"slot_id" validate:"required,gt=0"`
	ChosenProductID int64                          `json:"chosen_product_id" validate:"required,gt=0"`
	PerProduct      map[int64]productConfigPayload `json:"per_product" validate:"required,min=1"`
}

type upsertLineRequest struct {
	MenuPositionID int64         `json:"menu_position_id" validate:"required,gt=0"`
	Slots          []slotPayload `json:"slots" validate:"required,min=1,dive"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func toUpsertInput(payload upsertLineRequest) cartsvc.UpsertLineInput {
	slots := make(types.OrderSlots, 0, len(payload.Slots))
	for _, slot := range payload.Slots {
		perProduct := make(map[int64]*types.ProductConfig, len(slot.PerProduct))
		for productID, cfg := range slot.PerProduct {
			perProduct[productID] = &types.ProductConfig{
				VariationID:           cfg.VariationID,
				ExcludedIngredientIDs: cfg.ExcludedIngredientIDs,
				IncludedToppingIDs:    cfg.IncludedToppingIDs,
			}
		}
		slots = append(slots, types.SlotSelection{
			SlotID:          slot.SlotID,
			ChosenProductID: slot.ChosenProductID,
			PerProduct:      perProduct,
		})
	}
	return cartsvc.UpsertLineInput{
		MenuPositionID: payload.MenuPositionID,
		Slots:          slots,
	}
}
