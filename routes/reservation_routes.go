package routes

import (
	"github.com/gorilla/mux"

	"reservation-service/controllers"
)

func ReservationRoutes(router *mux.Router, c *controllers.Controller) {
	router.HandleFunc("/api/reservations", c.CreateReservation()).Methods("POST")
	router.HandleFunc("/api/reservations", c.GetReservations()).Methods("GET")
}
