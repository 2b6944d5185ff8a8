package controllers

import (
	"net/http"

	"newsletter/internal/delivery/http/helpers"
)

// HealthController exposes the liveness probe.
type HealthController struct{}

// NewHealthController creates a HealthController.
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /health [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
