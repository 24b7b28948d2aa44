package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slicelab/pizzeria-backend/internal/catalog"
	"github.com/slicelab/pizzeria-backend/internal/pricing"
	"github.com/slicelab/pizzeria-backend/pkg/db"
	"github.com/slicelab/pizzeria-backend/pkg/db/models"
	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type snapshotLoader interface {
	SnapshotForPosition(ctx context.Context, positionID int64) (*catalog.Snapshot, error)
}

// UpsertLineInput carries a submitted menu position configuration.
type UpsertLineInput struct {
	MenuPositionID int64
	Slots          types.OrderSlots
}

// View is the cart read model served to clients.
type View struct {
	Lines      []models.CartLine
	TotalCount int
	TotalCents int
}

// Service owns the order line lifecycle: one priced line per menu position,
// upsert on resubmit, removal at zero quantity.
type Service interface {
	AddOrUpsert(ctx context.Context, sessionID uuid.UUID, input UpsertLineInput) (*models.CartLine, error)
	SetQuantity(ctx context.Context, sessionID uuid.UUID, positionID int64, quantity int) (*models.CartLine, error)
	Remove(ctx context.Context, sessionID uuid.UUID, positionID int64) error
	GetCart(ctx context.Context, sessionID uuid.UUID) (*View, error)
}

type service struct {
	repo    Repository
	tx      txRunner
	catalog snapshotLoader
}

// NewService builds a cart service backed by the provided stack.
func NewService(repo Repository, tx txRunner, catalogSvc snapshotLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	return &service{repo: repo, tx: tx, catalog: catalogSvc}, nil
}

// AddOrUpsert validates the submitted slots against the live snapshot,
// freezes the computed price and writes the line atomically. Resubmitting the
// same menu position replaces the stored configuration and resets quantity
// to one.
func (s *service) AddOrUpsert(ctx context.Context, sessionID uuid.UUID, input UpsertLineInput) (*models.CartLine, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session id is required")
	}
	if input.MenuPositionID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "menu position id must be positive")
	}
	if len(input.Slots) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one slot selection is required")
	}

	snap, err := s.catalog.SnapshotForPosition(ctx, input.MenuPositionID)
	if err != nil {
		return nil, err
	}

	position, ok := snap.MenuPosition(input.MenuPositionID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeMissingEntity, "menu position missing from catalog")
	}

	if err := validateSlotShape(input.Slots, position); err != nil {
		return nil, err
	}

	totalCents, err := pricing.ComputeTotalPrice(input.Slots, snap)
	if err != nil {
		return nil, err
	}

	var saved *models.CartLine
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		line, err := txRepo.FindBySessionAndPosition(ctx, sessionID, input.MenuPositionID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if line != nil {
			line.Slots = input.Slots
			line.TotalPriceCents = totalCents
			line.Quantity = 1
			saved, err = txRepo.Update(ctx, line)
			return err
		}

		saved, err = txRepo.Create(ctx, &models.CartLine{
			CartSessionID:   sessionID,
			MenuPositionID:  input.MenuPositionID,
			CategoryID:      position.CategoryID,
			PositionName:    position.MenuPositionName,
			Quantity:        1,
			TotalPriceCents: totalCents,
			Slots:           input.Slots,
		})
		return err
	}); err != nil {
		if db.IsUniqueViolation(err, "idx_cart_lines_session_position") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "cart line was added concurrently")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart line")
	}

	return saved, nil
}

// SetQuantity updates a line's quantity. Zero or negative removes the line;
// a positive quantity on an absent line is a not-found error so callers can
// tell nothing changed.
func (s *service) SetQuantity(ctx context.Context, sessionID uuid.UUID, positionID int64, quantity int) (*models.CartLine, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session id is required")
	}

	if quantity <= 0 {
		if err := s.Remove(ctx, sessionID, positionID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var saved *models.CartLine
	if err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		line, err := txRepo.FindBySessionAndPosition(ctx, sessionID, positionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
			}
			return err
		}

		line.Quantity = quantity
		saved, err = txRepo.Update(ctx, line)
		return err
	}); err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart line quantity")
	}

	return saved, nil
}

// Remove deletes the line for a menu position. Removing an absent line is a
// no-op.
func (s *service) Remove(ctx context.Context, sessionID uuid.UUID, positionID int64) error {
	if sessionID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session id is required")
	}
	if err := s.repo.Delete(ctx, sessionID, positionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart line")
	}
	return nil
}

// GetCart returns all lines in first-add order with aggregate totals.
func (s *service) GetCart(ctx context.Context, sessionID uuid.UUID) (*View, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session id is required")
	}

	lines, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart lines")
	}

	view := &View{Lines: lines}
	for _, line := range lines {
		view.TotalCount += line.Quantity
		view.TotalCents += line.TotalPriceCents * line.Quantity
	}
	return view, nil
}

// validateSlotShape checks the submitted slots cover the position's category
// maps one-to-one and in order.
func validateSlotShape(slots types.OrderSlots, position catalog.MenuPosition) error {
	if len(slots) != len(position.CategoryMaps) {
		return pkgerrors.New(pkgerrors.CodeValidation, "slot count does not match menu position").
			WithDetails(map[string]any{"want": len(position.CategoryMaps), "got": len(slots)})
	}
	for i, slot := range slots {
		if slot.SlotID != position.CategoryMaps[i].ID {
			return pkgerrors.New(pkgerrors.CodeValidation, "slot order does not match menu position").
				WithDetails(map[string]any{"index": i, "want": position.CategoryMaps[i].ID, "got": slot.SlotID})
		}
	}
	return nil
}
