package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/logger"
)

// CategoryDTO is the public category shape.
type CategoryDTO struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
	Listed       bool   `json:"listed"`
}

// Service exposes read-only catalog lookups.
type Service interface {
	// GetCategories returns listed categories in catalog order.
	GetCategories(ctx context.Context) ([]CategoryDTO, error)
	// GetPositions returns the denormalized snapshot for a category.
	GetPositions(ctx context.Context, categoryID int64) (*Snapshot, error)
	// SnapshotForPosition resolves a menu position to its category snapshot.
	SnapshotForPosition(ctx context.Context, positionID int64) (*Snapshot, error)
}

type service struct {
	repo  Repository
	cache SnapshotCache
	logg  *logger.Logger
}

// NewService builds the catalog service. Cache may be nil; reads then always
// hit the database.
func NewService(repo Repository, cache SnapshotCache, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, cache: cache, logg: logg}, nil
}

func (s *service) GetCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}

	categories := make([]CategoryDTO, 0, len(rows))
	for _, row := range rows {
		if !row.Listed {
			continue
		}
		categories = append(categories, CategoryDTO{
			ID:           row.ID,
			CategoryName: row.CategoryName,
			Listed:       row.Listed,
		})
	}
	return categories, nil
}

func (s *service) GetPositions(ctx context.Context, categoryID int64) (*Snapshot, error) {
	if categoryID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category id must be positive")
	}

	if s.cache != nil {
		if snap, ok := s.cache.Get(ctx, categoryID); ok {
			return snap, nil
		}
	}

	rows, err := s.repo.ListPositionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu positions")
	}

	snap := denormalize(categoryID, rows)
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Put(ctx, snap)
	}
	return snap, nil
}

func (s *service) SnapshotForPosition(ctx context.Context, positionID int64) (*Snapshot, error) {
	if positionID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu position id must be positive")
	}

	categoryID, err := s.repo.FindPositionCategory(ctx, positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu position not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve menu position category")
	}

	snap, err := s.GetPositions(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if _, ok := snap.MenuPosition(positionID); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "menu position absent from category snapshot")
	}
	return snap, nil
}
