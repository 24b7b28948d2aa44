package catalog

import (
	catalogsvc "github.com/slicelab/pizzeria-backend/internal/catalog"
	"github.com/slicelab/pizzeria-backend/internal/selection"
	"github.com/slicelab/pizzeria-backend/pkg/types"
)

type categoryResponse struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
}

func newCategoryList(categories []catalogsvc.CategoryDTO) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{ID: c.ID, CategoryName: c.CategoryName})
	}
	return out
}

type variationResponse struct {
	ID          int64  `json:"id"`
	Size        string `json:"size"`
	WeightGrams int    `json:"weight_grams"`
	PriceCents  int    `json:"price_cents"`
	// Price delta against the product's default variation, for "+0.70" style
	// size switch labels.
	PriceDifferenceCents int `json:"price_difference_cents"`
}

type productResponse struct {
	ID            int64               `json:"id"`
	ProductName   string              `json:"product_name"`
	Variations    []variationResponse `json:"variations"`
	IngredientIDs []int64             `json:"ingredient_ids"`
	ToppingIDs    []int64             `json:"topping_ids"`
}

type ingredientResponse struct {
	ID             int64  `json:"id"`
	IngredientName string `json:"ingredient_name"`
	Optional       bool   `json:"optional"`
}

type toppingResponse struct {
	ID          int64  `json:"id"`
	ToppingName string `json:"topping_name"`
	PriceCents  int    `json:"price_cents"`
}

type slotResponse struct {
	ID               int64   `json:"id"`
	CategoryID       int64   `json:"category_id"`
	ProductIDs       []int64 `json:"product_ids"`
	DefaultProductID int64   `json:"default_product_id"`
	DiscountPercent  int     `json:"discount_percent"`
	// Informational strike-through price for the slot's default choice. The
	// cart total never applies it.
	BasePriceCents       int `json:"base_price_cents"`
	DiscountedPriceCents int `json:"discounted_price_cents"`
}

type positionResponse struct {
	ID               int64          `json:"id"`
	MenuPositionName string         `json:"menu_position_name"`
	Description      *string        `json:"description,omitempty"`
	Slots            []slotResponse `json:"slots"`
	// The selection state the configuration form opens with: default product
	// per slot, default variation per product, nothing excluded or added.
	DefaultSelection types.OrderSlots `json:"default_selection,omitempty"`
}

type menuResponse struct {
	CategoryID  int64                `json:"category_id"`
	Positions   []positionResponse   `json:"positions"`
	Products    []productResponse    `json:"products"`
	Ingredients []ingredientResponse `json:"ingredients"`
	Toppings    []toppingResponse    `json:"toppings"`
}

func newMenuResponse(snap *catalogsvc.Snapshot) menuResponse {
	out := menuResponse{CategoryID: snap.CategoryID}

	for _, posID := range snap.MenuPositionIDs {
		pos := snap.MenuPositions[posID]
		posOut := positionResponse{
			ID:               pos.ID,
			MenuPositionName: pos.MenuPositionName,
			Description:      pos.Description,
		}
		for _, slot := range pos.CategoryMaps {
			slotOut := slotResponse{
				ID:               slot.ID,
				CategoryID:       slot.CategoryID,
				ProductIDs:       slot.ProductIDs,
				DefaultProductID: slot.DefaultProductID,
				DiscountPercent:  slot.DiscountPercent,
			}
			if product, ok := snap.Product(slot.DefaultProductID); ok {
				base := defaultVariation(product).PriceCents
				slotOut.BasePriceCents = base
				slotOut.DiscountedPriceCents = catalogsvc.DisplayDiscount(base, slot.DiscountPercent)
			}
			posOut.Slots = append(posOut.Slots, slotOut)
		}
		if defaults, err := selection.InitSlots(pos.CategoryMaps, snap); err == nil {
			posOut.DefaultSelection = defaults
		}
		out.Positions = append(out.Positions, posOut)
	}

	for _, productID := range snap.ProductIDs {
		product := snap.Products[productID]
		base := defaultVariation(product).PriceCents
		productOut := productResponse{
			ID:            product.ID,
			ProductName:   product.ProductName,
			IngredientIDs: product.IngredientIDs,
			ToppingIDs:    product.ToppingIDs,
		}
		for _, v := range product.Variations {
			productOut.Variations = append(productOut.Variations, variationResponse{
				ID:                   v.ID,
				Size:                 v.Size,
				WeightGrams:          v.WeightGrams,
				PriceCents:           v.PriceCents,
				PriceDifferenceCents: v.PriceCents - base,
			})
		}
		out.Products = append(out.Products, productOut)
	}

	for _, ingredientID := range snap.IngredientIDs {
		ingredient := snap.Ingredients[ingredientID]
		out.Ingredients = append(out.Ingredients, ingredientResponse{
			ID:             ingredient.ID,
			IngredientName: ingredient.IngredientName,
			Optional:       ingredient.Optional,
		})
	}
	for _, toppingID := range snap.ToppingIDs {
		topping := snap.Toppings[toppingID]
		out.Toppings = append(out.Toppings, toppingResponse{
			ID:          topping.ID,
			ToppingName: topping.ToppingName,
			PriceCents:  topping.PriceCents,
		})
	}

	return out
}

// defaultVariation mirrors the storefront's preselection rule: the second size
// tier when a product has more than one, otherwise the only one.
func defaultVariation(product catalogsvc.Product) catalogsvc.Variation {
	if len(product.Variations) == 0 {
		return catalogsvc.Variation{}
	}
	if len(product.Variations) > 1 {
		return product.Variations[1]
	}
	return product.Variations[0]
}
