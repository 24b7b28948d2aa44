package cart

import (
	"github.com/google/uuid"

	cartsvc "github.com/slicelab/pizzeria-backend/internal/cart"
	"github.com/slicelab/pizzeria-backend/pkg/db/models"
	"github.com/slicelab/pizzeria-backend/pkg/types"
)

type lineResponse struct {
	ID              uuid.UUID        `json:"id"`
	MenuPositionID  int64            `json:"menu_position_id"`
	PositionName    string           `json:"position_name"`
	Quantity        int              `json:"quantity"`
	TotalPriceCents int              `json:"total_price_cents"`
	LineTotalCents  int              `json:"line_total_cents"`
	Slots           types.OrderSlots `json:"slots"`
}

type cartResponse struct {
	Lines      []lineResponse `json:"lines"`
	TotalCount int            `json:"total_count"`
	TotalCents int            `json:"total_cents"`
}

func newLineResponse(line *models.CartLine) lineResponse {
	return lineResponse{
		ID:              line.ID,
		MenuPositionID:  line.MenuPositionID,
		PositionName:    line.PositionName,
		Quantity:        line.Quantity,
		TotalPriceCents: line.TotalPriceCents,
		LineTotalCents:  line.TotalPriceCents * line.Quantity,
		Slots:           line.Slots,
	}
}

func newCartResponse(view *cartsvc.View) cartResponse {
	out := cartResponse{
		Lines:      make([]lineResponse, 0, len(view.Lines)),
		TotalCount: view.TotalCount,
		TotalCents: view.TotalCents,
	}
	for i := range view.Lines {
		out.Lines = append(out.Lines, newLineResponse(&view.Lines[i]))
	}
	return out
}
