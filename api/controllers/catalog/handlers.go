package catalog

import (
	"math"
	"net/http"

	"github.com/slicelab/pizzeria-backend/api/responses"
	"github.com/slicelab/pizzeria-backend/api/validators"
	catalogsvc "github.com/slicelab/pizzeria-backend/internal/catalog"
	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/logger"
)

// Categories lists the storefront's visible categories.
func Categories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.GetCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCategoryList(categories))
	}
}

// Positions serves the denormalized menu for one category.
func Positions(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categoryID, err := parseCategoryID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithCategoryID(ctx, categoryID)
		}

		snap, err := svc.GetPositions(ctx, categoryID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, newMenuResponse(snap))
	}
}

func parseCategoryID(r *http.Request) (int64, error) {
	categoryID, err := validators.ParseQueryInt(r, "category", 0, 1, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	if categoryID == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "category query parameter is required")
	}
	return int64(categoryID), nil
}
