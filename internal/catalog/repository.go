package catalog

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/slicelab/pizzeria-backend/pkg/db/models"
)

// Repository loads catalog rows for denormalization.
type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListPositionsByCategory(ctx context.Context, categoryID int64) ([]models.MenuPosition, error)
	FindPositionCategory(ctx context.Context, positionID int64) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) ListPositionsByCategory(ctx context.Context, categoryID int64) ([]models.MenuPosition, error) {
	var positions []models.MenuPosition
	err := r.db.WithContext(ctx).
		Preload("CategoryMaps", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_maps.position ASC")
		}).
		Preload("CategoryMaps.Products.Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_variations.position ASC")
		}).
		Preload("CategoryMaps.Products.Ingredients").
		Preload("CategoryMaps.Products.Toppings").
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *repository) FindPositionCategory(ctx context.Context, positionID int64) (int64, error) {
	var position models.MenuPosition
	err := r.db.WithContext(ctx).
		Select("id", "category_id").
		Where("id = ?", positionID).
		First(&position).Error
	if err != nil {
		return 0, err
	}
	return position.CategoryID, nil
}

// denormalize folds the preloaded rows into a snapshot, deduplicating shared
// products/ingredients/toppings the same way the storefront API does.
func denormalize(categoryID int64, positions []models.MenuPosition) *Snapshot {
	snap := &Snapshot{
		CategoryID:    categoryID,
		MenuPositions: map[int64]MenuPosition{},
		Products:      map[int64]Product{},
		Ingredients:   map[int64]Ingredient{},
		Toppings:      map[int64]Topping{},
	}

	for _, row := range positions {
		pos := MenuPosition{
			ID:               row.ID,
			MenuPositionName: row.MenuPositionName,
			Description:      row.Description,
			CategoryID:       row.CategoryID,
		}

		for _, mapRow := range row.CategoryMaps {
			slot := CategoryMap{
				ID:               mapRow.ID,
				CategoryID:       mapRow.CategoryID,
				DiscountPercent:  mapRow.DiscountPercent,
				DefaultProductID: mapRow.DefaultProductID,
			}

			for _, productRow := range mapRow.Products {
				slot.ProductIDs = append(slot.ProductIDs, productRow.ID)
				if _, seen := snap.Products[productRow.ID]; seen {
					continue
				}

				product := Product{
					ID:          productRow.ID,
					ProductName: productRow.ProductName,
				}
				for _, variationRow := range productRow.Variations {
					product.Variations = append(product.Variations, Variation{
						ID:          variationRow.ID,
						Size:        variationRow.Size,
						WeightGrams: variationRow.WeightGrams,
						PriceCents:  variationRow.PriceCents,
					})
				}
				for _, ingredientRow := range productRow.Ingredients {
					product.IngredientIDs = append(product.IngredientIDs, ingredientRow.ID)
					snap.Ingredients[ingredientRow.ID] = Ingredient{
						ID:                ingredientRow.ID,
						IngredientName:    ingredientRow.IngredientName,
						IncludedByDefault: ingredientRow.IncludedByDefault,
						Optional:          ingredientRow.Optional,
					}
				}
				for _, toppingRow := range productRow.Toppings {
					product.ToppingIDs = append(product.ToppingIDs, toppingRow.ID)
					snap.Toppings[toppingRow.ID] = Topping{
						ID:          toppingRow.ID,
						ToppingName: toppingRow.ToppingName,
						PriceCents:  toppingRow.PriceCents,
					}
				}

				snap.Products[productRow.ID] = product
				snap.ProductIDs = append(snap.ProductIDs, productRow.ID)
			}

			pos.CategoryMaps = append(pos.CategoryMaps, slot)
		}

		snap.MenuPositions[row.ID] = pos
		snap.MenuPositionIDs = append(snap.MenuPositionIDs, row.ID)
	}

	snap.IngredientIDs = sortedKeys(snap.Ingredients)
	snap.ToppingIDs = sortedKeys(snap.Toppings)
	return snap
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
