package routes

import (
	"github.com/gorilla/mux"

	"reservation-service/controllers"
)

func HealthRoutes(router *mux.Router, c *controllers.Controller) {
	router.HandleFunc("/", controllers.Health()).Methods("GET")
	router.HandleFunc("/healthz", controllers.Health()).Methods("GET")
	router.HandleFunc("/ready", c.Ready()).Methods("GET")
}
