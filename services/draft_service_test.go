package services

import (
	"context"
	"testing"

	"invitaciones_server/models"
)

func TestDraftKey(t *testing.T) {
	if got := DraftKey("tpl-7"); got != "demo-customizer-tpl-7" {
		t.Errorf("DraftKey = %q, want demo-customizer-tpl-7", got)
	}
}

func TestDraftRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := &DraftService{Store: NewMemoryDraftStore()}

	draft := &models.Draft{
		CustomizerData: map[string]interface{}{"hero_groom_name": "Carlos"},
		TouchedFields:  map[string]bool{"hero_groom_name": true},
		SelectedMode:   "full",
	}
	if err := svc.SaveDraft(ctx, "tpl-1", draft); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	got, err := svc.GetDraft(ctx, "tpl-1")
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if got == nil {
		t.Fatal("GetDraft returned nil for a saved draft")
	}
	if got.CustomizerData["hero_groom_name"] != "Carlos" {
		t.Errorf("customizerData lost: %#v", got.CustomizerData)
	}
	if !got.TouchedFields["hero_groom_name"] {
		t.Error("touchedFields lost")
	}
	if got.SelectedMode != "full" {
		t.Errorf("selectedMode = %q, want full", got.SelectedMode)
	}
	if got.UpdatedAt == "" {
		t.Error("updatedAt not set on save")
	}
}

func TestGetDraftMissing(t *testing.T) {
	svc := &DraftService{Store: NewMemoryDraftStore()}

	got, err := svc.GetDraft(context.Background(), "tpl-none")
	if err != nil {
		t.Fatalf("missing draft must not error: %v", err)
	}
	if got != nil {
		t.Errorf("missing draft must be nil, got %#v", got)
	}
}

func TestGetDraftCorruptedPayload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryDraftStore()
	store.Put(ctx, DraftKey("tpl-2"), "{not valid json")

	svc := &DraftService{Store: store}
	got, err := svc.GetDraft(ctx, "tpl-2")
	if err != nil {
		t.Fatalf("corrupted draft must degrade, not fail: %v", err)
	}
	if got != nil {
		t.Errorf("corrupted draft must be treated as absent, got %#v", got)
	}
}

func TestSaveDraftLastWriteWins(t *testing.T) {
	ctx := context.Background()
	svc := &DraftService{Store: NewMemoryDraftStore()}

	first := &models.Draft{CustomizerData: map[string]interface{}{"hero_title": "A"}}
	second := &models.Draft{CustomizerData: map[string]interface{}{"hero_title": "B"}}

	if err := svc.SaveDraft(ctx, "tpl-3", first); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if err := svc.SaveDraft(ctx, "tpl-3", second); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	got, err := svc.GetDraft(ctx, "tpl-3")
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if got.CustomizerData["hero_title"] != "B" {
		t.Errorf("expected last write to win, got %#v", got.CustomizerData)
	}
}

func TestDeleteDraft(t *testing.T) {
	ctx := context.Background()
	svc := &DraftService{Store: NewMemoryDraftStore()}

	draft := &models.Draft{CustomizerData: map[string]interface{}{"hero_title": "A"}}
	if err := svc.SaveDraft(ctx, "tpl-4", draft); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}
	if err := svc.DeleteDraft(ctx, "tpl-4"); err != nil {
		t.Fatalf("DeleteDraft: %v", err)
	}

	got, err := svc.GetDraft(ctx, "tpl-4")
	if err != nil || got != nil {
		t.Errorf("draft still present after delete: %#v, %v", got, err)
	}
}
