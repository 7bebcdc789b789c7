package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nujjum/accessibility-api/internal/core/domain"
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

const (
	diagTimeout        = 3 * time.Second
	diagMaxCollections = 10
	diagMaxErrorLen    = 50
)

// GuardPinger reports availability of the SOS duplicate guard.
type GuardPinger interface {
	Ping(ctx context.Context) error
}

// DiagHandler serves GET /test — best-effort store connectivity diagnostics.
// It never fails the request: every failure mode is reported as a field
// value, since its purpose is introspection.
type DiagHandler struct {
	store     ports.DocumentStore
	guard     GuardPinger // nil when Redis is not configured
	dbURLSet  bool
	dbNameSet bool
}

func NewDiagHandler(store ports.DocumentStore, guard GuardPinger, dbURLSet, dbNameSet bool) *DiagHandler {
	return &DiagHandler{store: store, guard: guard, dbURLSet: dbURLSet, dbNameSet: dbNameSet}
}

type diagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Redis            string   `json:"redis"`
}

// Check handles GET /test.
//
// @Summary      Store connectivity diagnostics
// @Tags         status
// @Produce      json
// @Success      200  {object}  diagResponse
// @Router       /test [get]
func (h *DiagHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), diagTimeout)
	defer cancel()

	resp := diagResponse{
		Backend:          "running",
		Database:         "not_available",
		DatabaseURL:      envFlag(h.dbURLSet),
		DatabaseName:     envFlag(h.dbNameSet),
		ConnectionStatus: "not_connected",
		Collections:      []string{},
		Redis:            "not_configured",
	}

	switch err := h.store.Ping(ctx); {
	case err == nil:
		resp.Database = "connected"
		resp.ConnectionStatus = "connected"

		cols, err := h.store.Collections(ctx)
		if err != nil {
			resp.Database = "connected_with_errors: " + truncate(err.Error(), diagMaxErrorLen)
		} else {
			if len(cols) > diagMaxCollections {
				cols = cols[:diagMaxCollections]
			}
			resp.Collections = cols
		}
	case errors.Is(err, domain.ErrNotConfigured):
		resp.Database = "not_configured"
	default:
		resp.Database = "error: " + truncate(err.Error(), diagMaxErrorLen)
	}

	if h.guard != nil {
		if err := h.guard.Ping(ctx); err != nil {
			resp.Redis = "error: " + truncate(err.Error(), diagMaxErrorLen)
		} else {
			resp.Redis = "connected"
		}
	}

	return c.JSON(http.StatusOK, resp)
}

func envFlag(set bool) string {
	if set {
		return "set"
	}
	return "not_set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
