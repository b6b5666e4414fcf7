package routes

import (
	"invitaciones_server/controllers"
	"invitaciones_server/services"

	"github.com/gorilla/mux"
)

// RegisterTemplateRoutes sets up routes for the template gallery under /api/templates
func RegisterTemplateRoutes(r *mux.Router, templateService *services.TemplateService) {
	controller := controllers.NewTemplateController(templateService)

	templateRouter := r.PathPrefix("/api/templates").Subrouter()

	templateRouter.HandleFunc("", controller.ListTemplates).Methods("GET")
	templateRouter.HandleFunc("/{id}", controller.GetTemplate).Methods("GET")
}
