package controllers

import (
	"net/http"

	"invitaciones_server/services"
	"invitaciones_server/utils"

	"github.com/gorilla/mux"
)

// TemplateController handles the template gallery endpoints
type TemplateController struct {
	TemplateService *services.TemplateService
}

func NewTemplateController(templateService *services.TemplateService) *TemplateController {
	return &TemplateController{TemplateService: templateService}
}

// ListTemplates serves the gallery, with optional ?category= and ?premium=1
// filters.
func (c *TemplateController) ListTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	premiumOnly := r.URL.Query().Get("premium") == "1"

	templates, err := c.TemplateService.ListTemplates(r.Context(), category, premiumOnly)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, templates)
}

// GetTemplate serves one template's metadata.
func (c *TemplateController) GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["id"]

	template, err := c.TemplateService.GetTemplate(r.Context(), templateID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, template)
}
