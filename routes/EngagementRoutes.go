package routes

import (
	"net/http"

	"campuslink_server/controllers"
	"campuslink_server/middleware"
	"campuslink_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterEngagementRoutes registers all engagement routes under `/api/engagements`
func RegisterEngagementRoutes(router *mux.Router, engagementService *services.EngagementService, socket *socketio.Server) {
	controller := &controllers.EngagementController{EngagementService: engagementService, Socket: socket}

	engagementRouter := router.PathPrefix("/api/engagements").Subrouter()

	engagementRouter.Handle("", middleware.Protect(http.HandlerFunc(controller.SubmitReactionHandler))).Methods("POST")
	engagementRouter.HandleFunc("/event/{eventId}", controller.GetEventEngagementsHandler).Methods("GET")
	engagementRouter.HandleFunc("/club-likes", controller.GetClubLikesHandler).Methods("GET")
}
