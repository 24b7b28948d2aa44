package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slicelab/pizzeria-backend/pkg/db/models"
)

// Repository persists cart lines for a session.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindBySessionAndPosition(ctx context.Context, sessionID uuid.UUID, positionID int64) (*models.CartLine, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.CartLine, error)
	Create(ctx context.Context, line *models.CartLine) (*models.CartLine, error)
	Update(ctx context.Context, line *models.CartLine) (*models.CartLine, error)
	Delete(ctx context.Context, sessionID uuid.UUID, positionID int64) error
}
