package services

import (
	"context"
	"testing"

	"invitaciones_server/models"
)

type fakeInvitations struct {
	invitation *models.Invitation
	err        error
}

func (f *fakeInvitations) GetInvitationByURL(_ context.Context, _ string) (*models.Invitation, error) {
	return f.invitation, f.err
}

type fakeTemplates struct {
	template *models.Template
	err      error
}

func (f *fakeTemplates) GetTemplate(_ context.Context, _ string) (*models.Template, error) {
	return f.template, f.err
}

type fakeDrafts struct {
	draft *models.Draft
}

func (f *fakeDrafts) GetDraft(_ context.Context, _ string) (*models.Draft, error) {
	return f.draft, nil
}

func renderFixtures() (*fakeInvitations, *fakeTemplates, *fakeDrafts) {
	invitation := &models.Invitation{
		InvitationID: "inv-1",
		TemplateID:   "tpl-1",
		URLSlug:      "carlos-y-maria",
		InvitationData: models.SectionData{
			"hero": {"groom_name": "Carlos"},
		},
		Media: []models.MediaRecord{{MediaID: "m1", Kind: "image", FileKey: "invitation-media/photo.jpg"}},
	}
	template := &models.Template{
		TemplateID: "tpl-1",
		Colors:     map[string]string{"primary": "#aa3355"},
		Features:   []string{"rsvp"},
		Sections: map[string][]string{
			"hero": {"groom_name", "bride_name"},
		},
		Defaults: models.SectionData{
			"hero": {"bride_name": "Novia"},
		},
	}
	draft := &models.Draft{
		CustomizerData: map[string]interface{}{"hero_bride_name": "Maria"},
		TouchedFields:  map[string]bool{"hero_bride_name": true},
	}
	return &fakeInvitations{invitation: invitation}, &fakeTemplates{template: template}, &fakeDrafts{draft: draft}
}

func TestBuildRenderPayload(t *testing.T) {
	invitations, templates, drafts := renderFixtures()
	rs := &RenderService{Invitations: invitations, Templates: templates, Drafts: drafts}

	payload, err := rs.BuildRenderPayload(context.Background(), "carlos-y-maria", false)
	if err != nil {
		t.Fatalf("BuildRenderPayload: %v", err)
	}

	if payload.Data["hero"]["groom_name"] != "Carlos" {
		t.Errorf("fetched value lost: %#v", payload.Data)
	}
	if payload.Data["hero"]["bride_name"] != "Novia" {
		t.Errorf("template default not applied without preview: %#v", payload.Data)
	}
	if payload.Colors["primary"] != "#aa3355" {
		t.Errorf("colors not passed through: %#v", payload.Colors)
	}
	if payload.TemplateFile != "template-tpl-1" {
		t.Errorf("templateFile fallback = %q, want template-tpl-1", payload.TemplateFile)
	}
}

func TestBuildRenderPayloadPreviewFoldsDraft(t *testing.T) {
	invitations, templates, drafts := renderFixtures()
	rs := &RenderService{Invitations: invitations, Templates: templates, Drafts: drafts}

	payload, err := rs.BuildRenderPayload(context.Background(), "carlos-y-maria", true)
	if err != nil {
		t.Fatalf("BuildRenderPayload: %v", err)
	}

	if payload.Data["hero"]["bride_name"] != "Maria" {
		t.Errorf("touched draft value not applied in preview: %#v", payload.Data)
	}
}

func TestBuildRenderPayloadSignsMedia(t *testing.T) {
	invitations, templates, drafts := renderFixtures()
	rs := &RenderService{
		Invitations: invitations,
		Templates:   templates,
		Drafts:      drafts,
		SignMediaURL: func(key string) (string, error) {
			return "https://cdn.example.com/" + key, nil
		},
	}

	payload, err := rs.BuildRenderPayload(context.Background(), "carlos-y-maria", false)
	if err != nil {
		t.Fatalf("BuildRenderPayload: %v", err)
	}

	if payload.Media[0].URL != "https://cdn.example.com/invitation-media/photo.jpg" {
		t.Errorf("media URL not signed: %#v", payload.Media[0])
	}
	// The stored record must keep only the file key
	if invitations.invitation.Media[0].URL != "" {
		t.Errorf("signing mutated the stored record: %#v", invitations.invitation.Media[0])
	}
}

func TestBuildRenderPayloadNotFound(t *testing.T) {
	rs := &RenderService{
		Invitations: &fakeInvitations{err: models.ErrNotFound},
		Templates:   &fakeTemplates{},
	}

	_, err := rs.BuildRenderPayload(context.Background(), "missing", false)
	if !models.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
