package cart

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/slicelab/pizzeria-backend/api/middleware"
	"github.com/slicelab/pizzeria-backend/api/responses"
	"github.com/slicelab/pizzeria-backend/api/validators"
	cartsvc "github.com/slicelab/pizzeria-backend/internal/cart"
	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/logger"
)

// CartFetch returns the session's cart with aggregate totals.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.GetCart(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(view))
	}
}

// CartUpsertLine commits a configured menu position to the cart. Submitting a
// position already in the cart replaces its stored configuration.
func CartUpsertLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload upsertLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line, err := svc.AddOrUpsert(r.Context(), sessionID, toUpsertInput(payload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newLineResponse(line))
	}
}

// CartSetQuantity changes a line's quantity. Zero or negative removes the
// line and returns the refreshed cart.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		positionID, err := positionIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line, err := svc.SetQuantity(r.Context(), sessionID, positionID, *payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if line == nil {
			view, err := svc.GetCart(r.Context(), sessionID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, newCartResponse(view))
			return
		}

		responses.WriteSuccess(w, newLineResponse(line))
	}
}

// CartRemoveLine drops a menu position from the cart. Removing an absent
// position succeeds.
func CartRemoveLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		positionID, err := positionIDFromURL(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Remove(r.Context(), sessionID, positionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusOK, map[string]string{"status": "removed"})
	}
}

func sessionFromContext(r *http.Request) (uuid.UUID, error) {
	sessionID := middleware.CartSessionFromContext(r.Context())
	if sessionID == uuid.Nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session missing")
	}
	return sessionID, nil
}

func positionIDFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "positionID")
	positionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || positionID <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "position id must be a positive integer")
	}
	return positionID, nil
}
