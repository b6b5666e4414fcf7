package routes

import (
	"invitaciones_server/controllers"
	"invitaciones_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up account routes under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService, invitationService *services.InvitationService) {
	controller := controllers.NewUserController(userService, invitationService)

	userRouter := r.PathPrefix("/api/users").Subrouter()

	userRouter.HandleFunc("", controller.CreateUser).Methods("POST")
	userRouter.HandleFunc("/{userId}/invitations", controller.GetUserInvitations).Methods("GET")
}
