package controllers

import (
	"context"
	"net/http"
	"time"

	"reservation-service/configs"
	"reservation-service/responses"
)

// Health answers GET / and /healthz.
func Health() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		successResponse(rw, http.StatusOK, responses.HealthResponse{Status: "ok", Message: "Restaurant API is running"})
	}
}

// Ready answers GET /ready once the store answers a ping.
func (c *Controller) Ready() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if c.Store == nil {
			successResponse(rw, http.StatusOK, responses.HealthResponse{Status: "ready", Message: "Ready"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := c.Store.Ping(ctx); err != nil {
			configs.LogWithContext("health", "ready").WithError(err).Warn("Store not reachable")
			writeJSON(rw, http.StatusServiceUnavailable, responses.HealthResponse{Status: "unavailable", Message: "Store not reachable"})
			return
		}
		successResponse(rw, http.StatusOK, responses.HealthResponse{Status: "ready", Message: "Ready"})
	}
}
