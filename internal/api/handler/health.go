package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/movieflix/movieflix-api/internal/core/ports"
)

const readinessProbeKey = "healthcheck"

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready, the readiness probe. It
// round-trips a probe key through the active key/value backend before
// declaring the service ready.
type ReadinessHandler struct {
	kv ports.KVStore
}

func NewReadinessHandler(kv ports.KVStore) *ReadinessHandler {
	return &ReadinessHandler{kv: kv}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if err := h.probeStore(ctx); err != nil {
		deps["store"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["store"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

func (h *ReadinessHandler) probeStore(ctx context.Context) error {
	if err := h.kv.Set(ctx, readinessProbeKey, []byte("1")); err != nil {
		return err
	}
	if _, err := h.kv.Get(ctx, readinessProbeKey); err != nil {
		return err
	}
	return h.kv.Remove(ctx, readinessProbeKey)
}
