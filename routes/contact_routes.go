package routes

import (
	"github.com/gorilla/mux"

	"reservation-service/controllers"
)

func ContactRoutes(router *mux.Router, c *controllers.Controller) {
	router.HandleFunc("/api/contact", c.SubmitContact()).Methods("POST")
	router.HandleFunc("/api/contact", c.GetContacts()).Methods("GET")
}
