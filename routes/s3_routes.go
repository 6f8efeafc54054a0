package routes

import (
	"net/http"

	"campuslink_server/controllers"
	"campuslink_server/middleware"

	"github.com/gorilla/mux"
)

// RegisterS3Routes registers media presign routes under `/api/media`
func RegisterS3Routes(router *mux.Router) {
	mediaRouter := router.PathPrefix("/api/media").Subrouter()

	mediaRouter.Handle("/upload-url", middleware.Protect(http.HandlerFunc(controllers.GeneratePresignedURL))).Methods("POST")
	mediaRouter.Handle("/read-url", middleware.Protect(http.HandlerFunc(controllers.GetPresignedReadURL))).Methods("POST")
}
