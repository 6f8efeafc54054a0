package routes

import (
	"net/http"

	"campuslink_server/controllers"
	"campuslink_server/middleware"
	"campuslink_server/services"

	"github.com/gorilla/mux"
)

// RegisterClubRoutes registers all club routes under `/api/clubs`
func RegisterClubRoutes(router *mux.Router, clubService *services.ClubService) {
	controller := &controllers.ClubController{ClubService: clubService}

	clubRouter := router.PathPrefix("/api/clubs").Subrouter()

	clubRouter.Handle("", middleware.Protect(http.HandlerFunc(controller.CreateClubHandler))).Methods("POST")
	clubRouter.HandleFunc("", controller.GetAllClubsHandler).Methods("GET")
	clubRouter.HandleFunc("/{id}", controller.GetClubHandler).Methods("GET")
	clubRouter.Handle("/{id}", middleware.Protect(http.HandlerFunc(controller.UpdateClubHandler))).Methods("PUT")
	clubRouter.Handle("/{id}/approve", middleware.Protect(http.HandlerFunc(controller.ApproveClubHandler))).Methods("PATCH")
	clubRouter.Handle("/{id}", middleware.Protect(http.HandlerFunc(controller.DeleteClubHandler))).Methods("DELETE")
}
