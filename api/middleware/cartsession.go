package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/slicelab/pizzeria-backend/api/responses"
	"github.com/slicelab/pizzeria-backend/api/validators"
	pkgerrors "github.com/slicelab/pizzeria-backend/pkg/errors"
	"github.com/slicelab/pizzeria-backend/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

// CartSession resolves the anonymous cart session for the request. A missing
// header mints a fresh session id; a malformed one is rejected so clients
// never silently fork their cart. The id is echoed back on every response.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := validators.SanitizeString(r.Header.Get(cartSessionHeader), 64)

			sessionID := uuid.New()
			if raw != "" {
				parsed, err := uuid.Parse(raw)
				if err != nil {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.New(pkgerrors.CodeValidation, "cart session header must be a uuid"))
					return
				}
				sessionID = parsed
			}

			w.Header().Set(cartSessionHeader, sessionID.String())

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
