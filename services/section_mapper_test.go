package services

import (
	"reflect"
	"testing"

	"invitaciones_server/models"
)

func TestMapSections(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]interface{}
		want models.SectionData
	}{
		{
			name: "customizer payload with legacy alias",
			flat: map[string]interface{}{
				"hero_groom_name": "Carlos",
				"hero_bride_name": "Maria",
				"weddingDate":     "2024-12-15",
			},
			want: models.SectionData{
				"hero": {
					"groom_name": "Carlos",
					"bride_name": "Maria",
					"date":       "2024-12-15",
				},
			},
		},
		{
			name: "empty input yields empty output",
			flat: map[string]interface{}{},
			want: models.SectionData{},
		},
		{
			name: "nil input yields empty output",
			flat: nil,
			want: models.SectionData{},
		},
		{
			name: "empty values are dropped and empty sections removed",
			flat: map[string]interface{}{
				"hero_groom_name": "",
				"gallery_photo":   nil,
				"rsvp_deadline":   "2024-11-01",
			},
			want: models.SectionData{
				"rsvp": {"deadline": "2024-11-01"},
			},
		},
		{
			name: "unmatched keys land in general unprefixed",
			flat: map[string]interface{}{
				"music_url":  "song.mp3",
				"hero_title": "Nuestra boda",
			},
			want: models.SectionData{
				"hero":    {"title": "Nuestra boda"},
				"general": {"music_url": "song.mp3"},
			},
		},
		{
			name: "false and zero are kept",
			flat: map[string]interface{}{
				"rsvp_enabled": false,
				"gifts_amount": float64(0),
			},
			want: models.SectionData{
				"rsvp":  {"enabled": false},
				"gifts": {"amount": float64(0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSections(tt.flat)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MapSections() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMapSectionsAliasPrecedence(t *testing.T) {
	// groom_name aliases to hero_groom_name; it must end up under hero with
	// the section prefix stripped, never under general.
	got := MapSections(map[string]interface{}{"groom_name": "Carlos"})

	if _, ok := got["general"]; ok {
		t.Fatalf("aliased field leaked into general: %#v", got)
	}
	if v := got["hero"]["groom_name"]; v != "Carlos" {
		t.Errorf("hero.groom_name = %v, want Carlos", v)
	}
}

func TestMapSectionsAliasCollisionCanonicalWins(t *testing.T) {
	// Both spellings of the same slot in one payload. The canonical field
	// must win every time; map iteration order must never decide.
	flat := map[string]interface{}{
		"groom_name":      "FromAlias",
		"hero_groom_name": "FromCanonical",
	}

	for i := 0; i < 50; i++ {
		got := MapSections(flat)
		if v := got["hero"]["groom_name"]; v != "FromCanonical" {
			t.Fatalf("run %d: hero.groom_name = %v, want FromCanonical", i, v)
		}
	}
}

func TestMapSectionsNoEmptySections(t *testing.T) {
	got := MapSections(map[string]interface{}{
		"hero_title":    "",
		"gallery_cover": nil,
	})

	for section, vars := range got {
		if len(vars) == 0 {
			t.Errorf("section %q has an empty value mapping", section)
		}
	}
	if len(got) != 0 {
		t.Errorf("expected all sections removed, got %#v", got)
	}
}

func TestMapSectionsDeterministic(t *testing.T) {
	flat := map[string]interface{}{
		"hero_groom_name": "Carlos",
		"weddingDate":     "2024-12-15",
		"music_url":       "song.mp3",
	}

	first := MapSections(flat)
	second := MapSections(flat)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("MapSections is not deterministic: %#v vs %#v", first, second)
	}
}

func TestMapSectionsDoesNotMutateInput(t *testing.T) {
	flat := map[string]interface{}{"weddingDate": "2024-12-15"}
	MapSections(flat)

	if _, ok := flat["weddingDate"]; !ok || len(flat) != 1 {
		t.Errorf("input map was mutated: %#v", flat)
	}
}
