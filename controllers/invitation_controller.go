package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"invitaciones_server/models"
	"invitaciones_server/services"
	"invitaciones_server/utils"

	"github.com/gorilla/mux"
)

// InvitationController handles requests related to invitations
type InvitationController struct {
	InvitationService *services.InvitationService
	RenderService     *services.RenderService
}

// NewInvitationController creates a new instance of InvitationController
func NewInvitationController(invitationService *services.InvitationService, renderService *services.RenderService) *InvitationController {
	return &InvitationController{
		InvitationService: invitationService,
		RenderService:     renderService,
	}
}

// CreateInvitation stores a new invitation after checkout.
func (c *InvitationController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID     string                 `json:"userId" validate:"required"`
		TemplateID string                 `json:"templateId" validate:"required"`
		Title      string                 `json:"title" validate:"required"`
		Data       map[string]interface{} `json:"customizerData"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		utils.RespondError(w, err)
		return
	}

	invitation := models.Invitation{
		UserID:         payload.UserID,
		TemplateID:     payload.TemplateID,
		Title:          payload.Title,
		InvitationData: services.MapSections(payload.Data),
	}

	created, err := c.InvitationService.CreateInvitation(r.Context(), invitation)
	if err != nil {
		log.Printf("Failed to create invitation: %v", err)
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusCreated, created)
}

// GetInvitationByURL serves a public invitation by its url slug.
func (c *InvitationController) GetInvitationByURL(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["url"]

	invitation, err := c.InvitationService.GetInvitationByURL(r.Context(), slug)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"invitation":    invitation,
		"sections_data": invitation.InvitationData,
		"template_id":   invitation.TemplateID,
	})
}

// GetRenderPayload serves the fully merged props the template renderer
// consumes. ?preview=1 folds the visitor's draft into the merge.
func (c *InvitationController) GetRenderPayload(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["url"]
	includeDraft := r.URL.Query().Get("preview") == "1"

	payload, err := c.RenderService.BuildRenderPayload(r.Context(), slug, includeDraft)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, payload)
}

// TestSections maps a flat customizer payload into section data without
// persisting anything. The customizer preview calls this on every submit.
func (c *InvitationController) TestSections(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, models.ErrInvalidInput)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"sections_data": services.MapSections(payload),
	})
}

// SaveSections persists a mapped customizer payload on an invitation.
func (c *InvitationController) SaveSections(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["id"]

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, models.ErrInvalidInput)
		return
	}

	sections, err := c.InvitationService.SaveSections(r.Context(), invitationID, payload)
	if err != nil {
		log.Printf("Failed to save sections: %v", err)
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"sections_data": sections,
	})
}

// RegisterVisit increments the invitation's view counter.
func (c *InvitationController) RegisterVisit(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["id"]

	views, err := c.InvitationService.RegisterView(r.Context(), invitationID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]interface{}{"views": views})
}

// AddEvent records an RSVP or analytics event against an invitation.
func (c *InvitationController) AddEvent(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["id"]

	var payload struct {
		Type    string                 `json:"type" validate:"required,oneof=rsvp visit share"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		utils.RespondError(w, err)
		return
	}

	event, err := c.InvitationService.AddEvent(r.Context(), invitationID, models.EventRecord{
		Type:    payload.Type,
		Payload: payload.Payload,
	})
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusCreated, event)
}

// Publish flips the invitation's publication flag.
func (c *InvitationController) Publish(w http.ResponseWriter, r *http.Request) {
	invitationID := mux.Vars(r)["id"]

	var payload struct {
		Published bool `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, models.ErrInvalidInput)
		return
	}

	if err := c.InvitationService.PublishInvitation(r.Context(), invitationID, payload.Published); err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondSuccess(w, http.StatusOK, map[string]interface{}{"published": payload.Published})
}
