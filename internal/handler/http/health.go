// Package http provides HTTP handlers and middleware for the post generation
// API. It includes the generation endpoint, health endpoints, metrics
// collection, and request-scoped middleware.
package http

import (
	"net/http"

	"blogsmith/internal/handler/http/respond"
)

// RootHandler handles requests to the service root. It reports that the
// service is up regardless of provider configuration, so a deployment with
// missing credentials still answers.
type RootHandler struct{}

// ServeHTTP returns the service banner.
// @Summary      Service banner
// @Description  Confirms the service is running. Does not depend on provider configuration.
// @Tags         health
// @Produce      json
// @Success      200 {object} messageResponse
// @Router       / [get]
func (h RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, messageResponse{Message: "Service is running"})
}

// HeartbeatHandler handles liveness probe requests.
type HeartbeatHandler struct{}

// ServeHTTP returns the heartbeat status.
// @Summary      Heartbeat
// @Description  Liveness probe for orchestrators and uptime checks.
// @Tags         health
// @Produce      json
// @Success      200 {object} heartbeatResponse
// @Router       /heartbeat [get]
func (h HeartbeatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, heartbeatResponse{Status: "OK"})
}
