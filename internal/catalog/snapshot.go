package catalog

import (
	"fmt"

	"go.uber.org/multierr"

	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
)

// Variation is one size tier of a product inside a snapshot.
type Variation struct {
	ID          int64  `json:"id"`
	Size        string `json:"size"`
	WeightGrams int    `json:"weight_grams"`
	PriceCents  int    `json:"price_cents"`
}

// Product is the denormalized product shape: variations inline, ingredients
// and toppings by id.
type Product struct {
	ID            int64       `json:"id"`
	ProductName   string      `json:"product_name"`
	Variations    []Variation `json:"variations"`
	ToppingIDs    []int64     `json:"topping_ids"`
	IngredientIDs []int64     `json:"ingredient_ids"`
}

// Ingredient mirrors the catalog ingredient row.
type Ingredient struct {
	ID                int64  `json:"id"`
	IngredientName    string `json:"ingredient_name"`
	IncludedByDefault bool   `json:"included_by_default"`
	Optional          bool   `json:"optional"`
}

// Topping mirrors the catalog topping row.
type Topping struct {
	ID          int64  `json:"id"`
	ToppingName string `json:"topping_name"`
	PriceCents  int    `json:"price_cents"`
}

// CategoryMap is one slot of a menu position.
type CategoryMap struct {
	ID               int64   `json:"id"`
	CategoryID       int64   `json:"category_id"`
	DiscountPercent  int     `json:"discount_percent"`
	ProductIDs       []int64 `json:"product_ids"`
	DefaultProductID int64   `json:"default_product_id"`
}

// MenuPosition is a purchasable entry with its ordered slots.
type MenuPosition struct {
	ID               int64         `json:"id"`
	MenuPositionName string        `json:"menu_position_name"`
	Description      *string       `json:"description,omitempty"`
	CategoryID       int64         `json:"category_id"`
	CategoryMaps     []CategoryMap `json:"category_maps"`
}

// Snapshot is the read-only denormalized catalog for one category. Ordered id
// slices preserve catalog order for stable iteration; maps give O(1) lookup.
// A snapshot never mutates after Build.
type Snapshot struct {
	CategoryID int64 `json:"category_id"`

	MenuPositionIDs []int64                `json:"menu_position_ids"`
	MenuPositions   map[int64]MenuPosition `json:"menu_positions"`

	ProductIDs []int64           `json:"product_ids"`
	Products   map[int64]Product `json:"products"`

	IngredientIDs []int64              `json:"ingredient_ids"`
	Ingredients   map[int64]Ingredient `json:"ingredients"`

	ToppingIDs []int64           `json:"topping_ids"`
	Toppings   map[int64]Topping `json:"toppings"`
}

// MenuPosition looks up a position by id.
func (s *Snapshot) MenuPosition(id int64) (MenuPosition, bool) {
	pos, ok := s.MenuPositions[id]
	return pos, ok
}

// Product looks up a product by id.
func (s *Snapshot) Product(id int64) (Product, bool) {
	p, ok := s.Products[id]
	return p, ok
}

// Ingredient looks up an ingredient by id.
func (s *Snapshot) Ingredient(id int64) (Ingredient, bool) {
	i, ok := s.Ingredients[id]
	return i, ok
}

// Topping looks up a topping by id.
func (s *Snapshot) Topping(id int64) (Topping, bool) {
	t, ok := s.Toppings[id]
	return t, ok
}

// Variation finds a variation on the given product.
func (p Product) Variation(id int64) (Variation, bool) {
	for _, v := range p.Variations {
		if v.ID == id {
			return v, true
		}
	}
	return Variation{}, false
}

// HasTopping reports whether the product may carry the topping.
func (p Product) HasTopping(id int64) bool {
	for _, t := range p.ToppingIDs {
		if t == id {
			return true
		}
	}
	return false
}

// HasIngredient reports whether the ingredient belongs to the product.
func (p Product) HasIngredient(id int64) bool {
	for _, i := range p.IngredientIDs {
		if i == id {
			return true
		}
	}
	return false
}

// Validate checks referential integrity of the snapshot: every id reachable
// from a menu position must resolve, every default product must be among its
// slot's products, and every product needs at least one variation. All
// violations are collected before returning.
func (s *Snapshot) Validate() error {
	var errs error

	for _, posID := range s.MenuPositionIDs {
		pos, ok := s.MenuPositions[posID]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("menu position %d listed but absent", posID))
			continue
		}
		for _, slot := range pos.CategoryMaps {
			if !containsID(slot.ProductIDs, slot.DefaultProductID) {
				errs = multierr.Append(errs, fmt.Errorf("slot %d: default product %d not among slot products", slot.ID, slot.DefaultProductID))
			}
			for _, productID := range slot.ProductIDs {
				product, ok := s.Products[productID]
				if !ok {
					errs = multierr.Append(errs, fmt.Errorf("slot %d: product %d missing", slot.ID, productID))
					continue
				}
				if len(product.Variations) == 0 {
					errs = multierr.Append(errs, fmt.Errorf("product %d: no variations", productID))
				}
				for _, ingredientID := range product.IngredientIDs {
					if _, ok := s.Ingredients[ingredientID]; !ok {
						errs = multierr.Append(errs, fmt.Errorf("product %d: ingredient %d missing", productID, ingredientID))
					}
				}
				for _, toppingID := range product.ToppingIDs {
					if _, ok := s.Toppings[toppingID]; !ok {
						errs = multierr.Append(errs, fmt.Errorf("product %d: topping %d missing", productID, toppingID))
					}
				}
			}
		}
	}

	if errs != nil {
		return pkgerrors.Wrap(pkgerrors.CodeMissingEntity, errs, "catalog snapshot failed integrity check")
	}
	return nil
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
