package routes

import (
	"invitaciones_server/controllers"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up routes for media uploads under /api/media
func RegisterMediaRoutes(r *mux.Router) {
	mediaRouter := r.PathPrefix("/api/media").Subrouter()

	mediaRouter.HandleFunc("/upload-url", controllers.GeneratePresignedURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controllers.GetPresignedReadURL).Methods("POST")
}
