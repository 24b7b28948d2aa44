package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/slicelab/pizzeria-backend/api/responses"
	"github.com/slicelab/pizzeria-backend/pkg/config"
	"github.com/slicelab/pizzeria-backend/pkg/db"
	"github.com/slicelab/pizzeria-backend/pkg/logger"
	"github.com/slicelab/pizzeria-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pizzeria-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of each backing dependency. Redis is optional
// infrastructure; its failure marks the check degraded, not down.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Pizzeria-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				checks["database"] = "down"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "readiness database check failed", err)
				}
			} else {
				checks["database"] = "up"
			}
		}

		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				checks["redis"] = "degraded"
				if logg != nil {
					logg.Warn(logg.WithField(ctx, "error", err.Error()), "readiness redis check failed")
				}
			} else {
				checks["redis"] = "up"
			}
		}

		status := "ready"
		httpStatus := http.StatusOK
		if !healthy {
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		}

		responses.WriteSuccessStatus(w, httpStatus, map[string]any{
			"status": status,
			"checks": checks,
		})
	}
}
