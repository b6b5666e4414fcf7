package routes

import (
	"invitaciones_server/controllers"
	"invitaciones_server/services"

	"github.com/gorilla/mux"
)

// RegisterDraftRoutes sets up routes for customizer drafts under /api/drafts
func RegisterDraftRoutes(r *mux.Router, draftService *services.DraftService) {
	controller := controllers.NewDraftController(draftService)

	draftRouter := r.PathPrefix("/api/drafts").Subrouter()

	draftRouter.HandleFunc("/{templateId}", controller.GetDraft).Methods("GET")
	draftRouter.HandleFunc("/{templateId}", controller.SaveDraft).Methods("PUT")
	draftRouter.HandleFunc("/{templateId}", controller.DeleteDraft).Methods("DELETE")
}
