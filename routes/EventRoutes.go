package routes

import (
	"net/http"

	"campuslink_server/controllers"
	"campuslink_server/middleware"
	"campuslink_server/services"

	"github.com/gorilla/mux"
)

// RegisterEventRoutes registers all event routes under `/api/events`
func RegisterEventRoutes(router *mux.Router, eventService *services.EventService) {
	controller := &controllers.EventController{EventService: eventService}

	eventRouter := router.PathPrefix("/api/events").Subrouter()

	eventRouter.Handle("", middleware.Protect(http.HandlerFunc(controller.CreateEventHandler))).Methods("POST")
	eventRouter.HandleFunc("", controller.GetAllEventsHandler).Methods("GET")
	eventRouter.HandleFunc("/{id}", controller.GetEventHandler).Methods("GET")
	eventRouter.Handle("/{id}", middleware.Protect(http.HandlerFunc(controller.UpdateEventHandler))).Methods("PUT")
	eventRouter.Handle("/{id}", middleware.Protect(http.HandlerFunc(controller.DeleteEventHandler))).Methods("DELETE")
}
