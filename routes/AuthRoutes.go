package routes

import (
	"campuslink_server/controllers"
	"campuslink_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes registers register/login/logout under `/api/auth`
func RegisterAuthRoutes(router *mux.Router, userService *services.UserService) {
	controller := &controllers.AuthController{UserService: userService}

	authRouter := router.PathPrefix("/api/auth").Subrouter()

	authRouter.HandleFunc("/register", controller.RegisterHandler).Methods("POST")
	authRouter.HandleFunc("/login", controller.LoginHandler).Methods("POST")
	authRouter.HandleFunc("/logout", controller.LogoutHandler).Methods("POST")
}
