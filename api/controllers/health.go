package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/drenteria/catalog-backend/api/responses"
	pkgErrors "github.com/drenteria/catalog-backend/pkg/errors"
	"github.com/drenteria/catalog-backend/pkg/logger"
)

// Pinger is implemented by the db and redis clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db    Pinger
	cache Pinger
	logg  *logger.Logger
}

func NewHealthController(db, cache Pinger, logg *logger.Logger) *HealthController {
	return &HealthController{db: db, cache: cache, logg: logg}
}

// Live reports process liveness only.
func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

// Ready checks the backing stores with a short deadline.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	checks["db"] = "ok"
	if c.db == nil {
		checks["db"] = "not configured"
		healthy = false
	} else if err := c.db.Ping(ctx); err != nil {
		checks["db"] = err.Error()
		healthy = false
	}

	checks["redis"] = "ok"
	if c.cache == nil {
		checks["redis"] = "not configured"
	} else if err := c.cache.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}

	if !healthy {
		responses.WriteError(r.Context(), c.logg, w,
			pkgErrors.New(pkgErrors.CodeDependency, "dependencies unavailable").WithDetails(checks))
		return
	}
	responses.WriteSuccess(w, map[string]any{"status": "ok", "checks": checks})
}
