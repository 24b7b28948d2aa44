package catalog

import (
	"strings"
	"testing"

	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
)

func validSnapshot() *Snapshot {
	return &Snapshot{
		CategoryID:      1,
		MenuPositionIDs: []int64{1},
		MenuPositions: map[int64]MenuPosition{
			1: {
				ID:               1,
				MenuPositionName: "Pepperoni",
				CategoryID:       1,
				CategoryMaps: []CategoryMap{
					{ID: 10, CategoryID: 1, ProductIDs: []int64{1}, DefaultProductID: 1},
				},
			},
		},
		ProductIDs: []int64{1},
		Products: map[int64]Product{
			1: {
				ID:          1,
				ProductName: "Pepperoni",
				Variations: []Variation{
					{ID: 1, Size: "Small", PriceCents: 420},
					{ID: 2, Size: "Medium", PriceCents: 630},
				},
				ToppingIDs:    []int64{7},
				IngredientIDs: []int64{1},
			},
		},
		IngredientIDs: []int64{1},
		Ingredients: map[int64]Ingredient{
			1: {ID: 1, IngredientName: "mozzarella", Optional: true},
		},
		ToppingIDs: []int64{7},
		Toppings: map[int64]Topping{
			7: {ID: 7, ToppingName: "Jalapeno", PriceCents: 70},
		},
	}
}

func TestValidateAcceptsConsistentSnapshot(t *testing.T) {
	t.Parallel()

	if err := validSnapshot().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	delete(snap.Toppings, 7)
	delete(snap.Ingredients, 1)

	err := snap.Validate()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeMissingEntity {
		t.Fatalf("expected missing entity error, got %v", err)
	}
	msg := typed.Unwrap().Error()
	if !strings.Contains(msg, "ingredient 1") || !strings.Contains(msg, "topping 7") {
		t.Fatalf("expected both violations reported, got %q", msg)
	}
}

func TestValidateDefaultProductOutsideSlot(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	pos := snap.MenuPositions[1]
	pos.CategoryMaps[0].DefaultProductID = 999
	snap.MenuPositions[1] = pos

	err := snap.Validate()
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeMissingEntity {
		t.Fatalf("expected missing entity error, got %v", err)
	}
}

func TestValidateProductWithoutVariations(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	product := snap.Products[1]
	product.Variations = nil
	snap.Products[1] = product

	err := snap.Validate()
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeMissingEntity {
		t.Fatalf("expected missing entity error, got %v", err)
	}
}

func TestProductLookups(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	product, ok := snap.Product(1)
	if !ok {
		t.Fatal("expected product 1")
	}

	if v, ok := product.Variation(2); !ok || v.PriceCents != 630 {
		t.Fatalf("unexpected variation: %+v", v)
	}
	if _, ok := product.Variation(999); ok {
		t.Fatal("expected variation 999 to be absent")
	}
	if !product.HasTopping(7) || product.HasTopping(999) {
		t.Fatal("unexpected topping membership")
	}
	if !product.HasIngredient(1) || product.HasIngredient(999) {
		t.Fatal("unexpected ingredient membership")
	}
}
