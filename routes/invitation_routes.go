package routes

import (
	"invitaciones_server/controllers"
	"invitaciones_server/services"

	"github.com/gorilla/mux"
)

// RegisterInvitationRoutes sets up routes for invitation operations under /api/invitations
func RegisterInvitationRoutes(r *mux.Router, invitationService *services.InvitationService, renderService *services.RenderService) {
	controller := controllers.NewInvitationController(invitationService, renderService)

	invitationRouter := r.PathPrefix("/api/invitations").Subrouter()

	invitationRouter.HandleFunc("", controller.CreateInvitation).Methods("POST")
	invitationRouter.HandleFunc("/test-sections", controller.TestSections).Methods("POST")
	invitationRouter.HandleFunc("/by-url/{url}", controller.GetInvitationByURL).Methods("GET")
	invitationRouter.HandleFunc("/by-url/{url}/render", controller.GetRenderPayload).Methods("GET")
	invitationRouter.HandleFunc("/{id}/sections", controller.SaveSections).Methods("PUT")
	invitationRouter.HandleFunc("/{id}/visit", controller.RegisterVisit).Methods("POST")
	invitationRouter.HandleFunc("/{id}/events", controller.AddEvent).Methods("POST")
	invitationRouter.HandleFunc("/{id}/publish", controller.Publish).Methods("PATCH")
}
