package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipehub/internal/cache"
	"recipehub/internal/config"
)

// DiagHandler exposes the health check and sanitized runtime
// configuration.
type DiagHandler struct {
	cfg   *config.Config
	cache *cache.Client
}

// NewDiagHandler creates a new diagnostics handler.
func NewDiagHandler(cfg *config.Config, cache *cache.Client) *DiagHandler {
	return &DiagHandler{cfg: cfg, cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags diagnostics
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *DiagHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Healthy"})
}

// RuntimeConfig godoc
// @Summary Sanitized runtime configuration
// @Description Returns non-secret configuration values to aid debugging. The signing secret and DSN are never included.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} config.RuntimeView
// @Router /config/runtime [get]
func (h *DiagHandler) RuntimeConfig(c echo.Context) error {
	view := h.cfg.Runtime()
	view.RedisConfigured = h.cache.Healthy(c.Request().Context())
	return c.JSON(http.StatusOK, view)
}
