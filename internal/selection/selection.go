// Package selection holds the mutable per-order-line state of an in-progress
// menu position configuration and the operations that edit it. Pricing and
// submission re-validate against the catalog snapshot; edits here stay cheap.
package selection

import (
	"github.com/slicelab/pizzeria-backend/internal/catalog"
	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/types"
)

// InitSlots builds the default selection for every slot of a menu position.
// Every product a slot can hold gets its own default ProductConfig up front,
// so previewing an alternative and coming back never loses edits. Default
// variation is the second tier when the product has more than one.
func InitSlots(categoryMaps []catalog.CategoryMap, snap *catalog.Snapshot) ([]types.SlotSelection, error) {
	slots := make([]types.SlotSelection, 0, len(categoryMaps))

	for _, slot := range categoryMaps {
		if _, ok := snap.Product(slot.DefaultProductID); !ok {
			return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "default product missing from catalog").
				WithDetails(map[string]any{"slot_id": slot.ID, "product_id": slot.DefaultProductID})
		}

		perProduct := make(map[int64]*types.ProductConfig, len(slot.ProductIDs))
		for _, productID := range slot.ProductIDs {
			product, ok := snap.Product(productID)
			if !ok {
				return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "slot product missing from catalog").
					WithDetails(map[string]any{"slot_id": slot.ID, "product_id": productID})
			}
			cfg, err := defaultConfig(product)
			if err != nil {
				return nil, err
			}
			perProduct[productID] = cfg
		}

		slots = append(slots, types.SlotSelection{
			SlotID:          slot.ID,
			ChosenProductID: slot.DefaultProductID,
			PerProduct:      perProduct,
		})
	}

	return slots, nil
}

func defaultConfig(product catalog.Product) (*types.ProductConfig, error) {
	if len(product.Variations) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "product has no variations").
			WithDetails(map[string]any{"product_id": product.ID})
	}

	variation := product.Variations[0]
	if len(product.Variations) > 1 {
		variation = product.Variations[1]
	}

	return &types.ProductConfig{VariationID: variation.ID}, nil
}

// SetChosenProduct switches the active product of a slot. The previous
// product's config stays in place so swapping back restores it.
func SetChosenProduct(slot *types.SlotSelection, productID int64) error {
	if _, ok := slot.PerProduct[productID]; !ok {
		return pkgerrors.New(pkgerrors.CodeMissingEntity, "product is not offered by this slot").
			WithDetails(map[string]any{"slot_id": slot.SlotID, "product_id": productID})
	}
	slot.ChosenProductID = productID
	return nil
}

// ToggleExcludedIngredient adds or removes an ingredient exclusion.
// Non-optional ingredients and ingredients outside the product reject without
// mutating the config.
func ToggleExcludedIngredient(cfg *types.ProductConfig, product catalog.Product, snap *catalog.Snapshot, ingredientID int64) error {
	if !product.HasIngredient(ingredientID) {
		return pkgerrors.New(pkgerrors.CodeInvalidOperation, "ingredient does not belong to this product").
			WithDetails(map[string]any{"product_id": product.ID, "ingredient_id": ingredientID})
	}
	ingredient, ok := snap.Ingredient(ingredientID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeMissingEntity, "ingredient missing from catalog").
			WithDetails(map[string]any{"ingredient_id": ingredientID})
	}
	if !ingredient.Optional {
		return pkgerrors.New(pkgerrors.CodeInvalidOperation, "ingredient cannot be removed").
			WithDetails(map[string]any{"ingredient_id": ingredientID})
	}

	cfg.ExcludedIngredientIDs = toggleID(cfg.ExcludedIngredientIDs, ingredientID)
	return nil
}

// ToggleIncludedTopping adds or removes a topping. The only restriction is
// that the product offers the topping.
func ToggleIncludedTopping(cfg *types.ProductConfig, product catalog.Product, toppingID int64) error {
	if !product.HasTopping(toppingID) {
		return pkgerrors.New(pkgerrors.CodeInvalidOperation, "topping is not offered for this product").
			WithDetails(map[string]any{"product_id": product.ID, "topping_id": toppingID})
	}

	cfg.IncludedToppingIDs = toggleID(cfg.IncludedToppingIDs, toppingID)
	return nil
}

// SetVariation replaces the chosen variation id. Membership is checked at
// price/submit time, keeping per-keystroke updates free of lookups.
func SetVariation(cfg *types.ProductConfig, variationID int64) {
	cfg.VariationID = variationID
}

func toggleID(ids []int64, id int64) []int64 {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
