package routes

import (
	"net/http"

	"campuslink_server/controllers"
	"campuslink_server/middleware"
	"campuslink_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes registers all user routes under `/api/users`
func RegisterUserRoutes(router *mux.Router, userService *services.UserService, clubService *services.ClubService) {
	controller := &controllers.UserController{UserService: userService, ClubService: clubService}

	userRouter := router.PathPrefix("/api/users").Subrouter()

	userRouter.Handle("/update", middleware.Protect(http.HandlerFunc(controller.UpdateProfileHandler))).Methods("PUT")
	userRouter.Handle("/follow/{clubId}", middleware.Protect(http.HandlerFunc(controller.FollowClubHandler))).Methods("POST")
	userRouter.Handle("/unfollow/{clubId}", middleware.Protect(http.HandlerFunc(controller.UnfollowClubHandler))).Methods("POST")
	userRouter.Handle("/{id}", middleware.Protect(http.HandlerFunc(controller.GetUserHandler))).Methods("GET")
	userRouter.Handle("", middleware.Protect(http.HandlerFunc(controller.GetAllUsersHandler))).Methods("GET")
	userRouter.Handle("/{id}", middleware.Protect(http.HandlerFunc(controller.DeleteUserHandler))).Methods("DELETE")
}
