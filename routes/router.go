package routes

import (
	"github.com/gorilla/mux"

	"reservation-service/controllers"
	"reservation-service/middleware"
)

// NewRouter registers every route on a fresh router with logging, panic
// recovery and the given extra middleware, applied in that order.
func NewRouter(c *controllers.Controller, extra ...mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)
	router.Use(extra...)

	ReservationRoutes(router, c)
	ContactRoutes(router, c)
	HealthRoutes(router, c)
	return router
}
