package controllers

import (
	"encoding/json"
	"net/http"

	"invitaciones_server/models"
	"invitaciones_server/services"
	"invitaciones_server/utils"

	"github.com/gorilla/mux"
)

// DraftController handles customizer draft storage
type DraftController struct {
	DraftService *services.DraftService
}

func NewDraftController(draftService *services.DraftService) *DraftController {
	return &DraftController{DraftService: draftService}
}

// GetDraft returns the stored draft for a template. A missing or corrupted
// draft comes back as null, never as an error.
func (c *DraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	draft, err := c.DraftService.GetDraft(r.Context(), templateID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, draft)
}

// SaveDraft stores a draft for a template (last write wins).
func (c *DraftController) SaveDraft(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	var draft models.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.RespondError(w, models.ErrInvalidInput)
		return
	}

	if err := c.DraftService.SaveDraft(r.Context(), templateID, &draft); err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, draft)
}

// DeleteDraft discards the stored draft for a template.
func (c *DraftController) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["templateId"]

	if err := c.DraftService.DeleteDraft(r.Context(), templateID); err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]string{"message": "Draft deleted"})
}
