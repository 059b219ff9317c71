package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health, the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness confirms the process is serving.
//
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// ReadinessHandler handles GET /health/ready. Required dependencies decide the
// status code; optional ones (the skill cache) are reported but never fail it.
type ReadinessHandler struct {
	required []Pinger
	optional []Pinger
}

func NewReadinessHandler(required []Pinger, optional []Pinger) *ReadinessHandler {
	return &ReadinessHandler{required: required, optional: optional}
}

type dependencyStatus struct {
	Status   string `json:"status"`
	Required bool   `json:"required"`
	Error    string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness pings every dependency.
//
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  readinessResponse
// @Failure  503  {object}  readinessResponse
// @Router   /health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.required)+len(h.optional))
	healthy := true

	check := func(p Pinger, required bool) {
		if err := p.Ping(ctx); err != nil {
			deps[p.Name()] = dependencyStatus{Status: "unhealthy", Required: required, Error: err.Error()}
			if required {
				healthy = false
			}
			return
		}
		deps[p.Name()] = dependencyStatus{Status: "ok", Required: required}
	}
	for _, p := range h.required {
		check(p, true)
	}
	for _, p := range h.optional {
		check(p, false)
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
