package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slicelab/pizzeria-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindBySessionAndPosition(ctx context.Context, sessionID uuid.UUID, positionID int64) (*models.CartLine, error) {
	var line models.CartLine
	err := r.db.WithContext(ctx).
		Where("cart_session_id = ? AND menu_position_id = ?", sessionID, positionID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *repository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.CartLine, error) {
	var lines []models.CartLine
	// First-add order: the cart lists lines as they were first added, not by
	// last update.
	err := r.db.WithContext(ctx).
		Where("cart_session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *repository) Create(ctx context.Context, line *models.CartLine) (*models.CartLine, error) {
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return nil, err
	}
	return line, nil
}

func (r *repository) Update(ctx context.Context, line *models.CartLine) (*models.CartLine, error) {
	if err := r.db.WithContext(ctx).Save(line).Error; err != nil {
		return nil, err
	}
	return line, nil
}

func (r *repository) Delete(ctx context.Context, sessionID uuid.UUID, positionID int64) error {
	return r.db.WithContext(ctx).
		Where("cart_session_id = ? AND menu_position_id = ?", sessionID, positionID).
		Delete(&models.CartLine{}).Error
}
