package services

import (
	"context"
	"fmt"
	"log"

	"invitaciones_server/models"
)

// RenderPayload is the props contract handed to the template renderer.
// Missing sections are fine; the renderer falls back to template
// placeholders.
type RenderPayload struct {
	Invitation   *models.Invitation   `json:"invitation"`
	Data         models.SectionData   `json:"data"`
	Template     *models.Template     `json:"template"`
	Colors       map[string]string    `json:"colors,omitempty"`
	Features     []string             `json:"features,omitempty"`
	Media        []models.MediaRecord `json:"media,omitempty"`
	Events       []models.EventRecord `json:"events,omitempty"`
	TemplateFile string               `json:"templateFile"`
}

// InvitationFetcher and TemplateFetcher are the slices of the services the
// render builder needs, kept small so tests can inject fakes.
type InvitationFetcher interface {
	GetInvitationByURL(ctx context.Context, slug string) (*models.Invitation, error)
}

type TemplateFetcher interface {
	GetTemplate(ctx context.Context, templateID string) (*models.Template, error)
}

type DraftReader interface {
	GetDraft(ctx context.Context, templateID string) (*models.Draft, error)
}

type RenderService struct {
	Invitations InvitationFetcher
	Templates   TemplateFetcher
	Drafts      DraftReader
	// SignMediaURL turns a stored file key into a presigned read URL.
	// Optional; when nil the raw file keys are passed through.
	SignMediaURL func(key string) (string, error)
}

// BuildRenderPayload assembles everything the renderer needs for a public
// invitation page: the stored record, its template, the visitor's draft (in
// preview mode) and the merged section data.
func (rs *RenderService) BuildRenderPayload(ctx context.Context, slug string, includeDraft bool) (*RenderPayload, error) {
	invitation, err := rs.Invitations.GetInvitationByURL(ctx, slug)
	if err != nil {
		return nil, err
	}

	template, err := rs.Templates.GetTemplate(ctx, invitation.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load template '%s': %w", invitation.TemplateID, err)
	}

	var draft *models.Draft
	if includeDraft && rs.Drafts != nil {
		draft, err = rs.Drafts.GetDraft(ctx, invitation.TemplateID)
		if err != nil {
			// A broken draft never blocks rendering the stored data
			log.Printf("⚠️ Failed to load draft for template '%s': %v", invitation.TemplateID, err)
			draft = nil
		}
	}

	media := make([]models.MediaRecord, len(invitation.Media))
	copy(media, invitation.Media)
	if rs.SignMediaURL != nil {
		for i := range media {
			url, err := rs.SignMediaURL(media[i].FileKey)
			if err != nil {
				log.Printf("⚠️ Failed to sign media URL for '%s': %v", media[i].FileKey, err)
				continue
			}
			media[i].URL = url
		}
	}

	return &RenderPayload{
		Invitation:   invitation,
		Data:         ResolveSections(template, draft, invitation.InvitationData),
		Template:     template,
		Colors:       template.Colors,
		Features:     template.Features,
		Media:        media,
		Events:       invitation.Events,
		TemplateFile: template.RenderFile(),
	}, nil
}
