package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/slicelab/pizzeria-backend/api/controllers"
	cartcontrollers "github.com/slicelab/pizzeria-backend/api/controllers/cart"
	catalogcontrollers "github.com/slicelab/pizzeria-backend/api/controllers/catalog"
	"github.com/slicelab/pizzeria-backend/api/middleware"
	"github.com/slicelab/pizzeria-backend/internal/cart"
	"github.com/slicelab/pizzeria-backend/internal/catalog"
	"github.com/slicelab/pizzeria-backend/pkg/config"
	"github.com/slicelab/pizzeria-backend/pkg/db"
	"github.com/slicelab/pizzeria-backend/pkg/logger"
	"github.com/slicelab/pizzeria-backend/pkg/metrics"
	"github.com/slicelab/pizzeria-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cart.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/categories", catalogcontrollers.Categories(catalogService, logg))
		r.Get("/positions", catalogcontrollers.Positions(catalogService, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(middleware.CartSession(logg))
		r.Get("/", cartcontrollers.CartFetch(cartService, logg))
		r.Put("/lines", cartcontrollers.CartUpsertLine(cartService, logg))
		r.Patch("/lines/{positionID}/quantity", cartcontrollers.CartSetQuantity(cartService, logg))
		r.Delete("/lines/{positionID}", cartcontrollers.CartRemoveLine(cartService, logg))
	})

	return r
}
