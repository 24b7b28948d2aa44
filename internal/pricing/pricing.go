// Package pricing folds a slot selection and a catalog snapshot into a total
// price. It is pure: no I/O, integer minor currency units only.
package pricing

import (
	"github.com/slicelab/pizzeria-backend/internal/catalog"
	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/types"
)

// ResolvedSlot is a slot selection with every reference resolved against the
// snapshot. Unresolvable toppings and ingredients are filtered out; an
// unresolvable product or variation fails resolution outright.
type ResolvedSlot struct {
	Product             catalog.Product
	Variation           catalog.Variation
	Config              *types.ProductConfig
	ExcludedIngredients []catalog.Ingredient
	IncludedToppings    []catalog.Topping
}

// ResolveSlot resolves the chosen product, its config and variation for one
// slot. Used by both the price fold and cart line rendering.
func ResolveSlot(slot types.SlotSelection, snap *catalog.Snapshot) (*ResolvedSlot, error) {
	product, ok := snap.Product(slot.ChosenProductID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "chosen product missing from catalog").
			WithDetails(map[string]any{"slot_id": slot.SlotID, "product_id": slot.ChosenProductID})
	}

	cfg, ok := slot.Config()
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "no configuration for chosen product").
			WithDetails(map[string]any{"slot_id": slot.SlotID, "product_id": slot.ChosenProductID})
	}

	variation, ok := product.Variation(cfg.VariationID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "variation missing from product").
			WithDetails(map[string]any{"product_id": product.ID, "variation_id": cfg.VariationID})
	}

	resolved := &ResolvedSlot{
		Product:   product,
		Variation: variation,
		Config:    cfg,
	}

	// Stale topping/ingredient references are dropped, not fatal: they are
	// additive extras and must never block checkout.
	for _, toppingID := range cfg.IncludedToppingIDs {
		if topping, ok := snap.Topping(toppingID); ok {
			resolved.IncludedToppings = append(resolved.IncludedToppings, topping)
		}
	}
	for _, ingredientID := range cfg.ExcludedIngredientIDs {
		if ingredient, ok := snap.Ingredient(ingredientID); ok {
			resolved.ExcludedIngredients = append(resolved.ExcludedIngredients, ingredient)
		}
	}

	return resolved, nil
}

// PriceCents is the slot's contribution to the total: variation base price
// plus topping surcharges. Ingredient exclusions are free.
func (r *ResolvedSlot) PriceCents() int {
	price := r.Variation.PriceCents
	for _, topping := range r.IncludedToppings {
		price += topping.PriceCents
	}
	return price
}

// ComputeTotalPrice sums slot prices over the whole selection. Summation is
// integer and order independent. Category discounts are display-only and are
// never subtracted here.
func ComputeTotalPrice(slots []types.SlotSelection, snap *catalog.Snapshot) (int, error) {
	total := 0
	for _, slot := range slots {
		resolved, err := ResolveSlot(slot, snap)
		if err != nil {
			return 0, err
		}
		total += resolved.PriceCents()
	}
	return total, nil
}
