package services

import (
	"strings"

	"invitaciones_server/models"
)

// GeneralSection is the fallback bucket for fields whose name matches no
// declared section prefix.
const GeneralSection = "general"

// sectionOrder is the fixed section list. Prefix matching walks it in
// declaration order and the first match wins.
var sectionOrder = []string{
	"hero",
	"couple",
	"gallery",
	"itinerary",
	"rsvp",
	"gifts",
	"footer",
}

// fieldAliases renames legacy customizer field names to their canonical
// "{section}_{variable}" form before section matching.
var fieldAliases = map[string]string{
	"groom_name":    "hero_groom_name",
	"bride_name":    "hero_bride_name",
	"weddingDate":   "hero_date",
	"weddingPlace":  "hero_place",
	"coupleMessage": "couple_message",
	"rsvpDeadline":  "rsvp_deadline",
	"giftAccount":   "gifts_account",
}

// canonicalFieldName applies the legacy alias table, if the field has one.
func canonicalFieldName(field string) string {
	if alias, ok := fieldAliases[field]; ok {
		return alias
	}
	return field
}

// emptyValue reports whether a customizer value should be dropped before
// mapping. Only nil and empty strings count as empty; false and 0 are
// legitimate values.
func emptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && s == "" {
		return true
	}
	return false
}

// MapSections reshapes a flat customizer field map into section-keyed data.
// Fields named "{section}_{variable}" land in their section with the prefix
// stripped; everything else lands unprefixed in the "general" bucket.
// Sections that end up empty are removed, so an empty input yields an empty
// result. When a legacy alias and its canonical field name both appear, the
// canonical one wins. The function is pure: it never touches its input.
func MapSections(flat map[string]interface{}) models.SectionData {
	out := models.SectionData{}

	// Aliased fields go first so a field spelled under its canonical name
	// always overwrites its alias, regardless of map iteration order.
	for field, value := range flat {
		if _, aliased := fieldAliases[field]; aliased {
			mapField(out, field, value)
		}
	}
	for field, value := range flat {
		if _, aliased := fieldAliases[field]; !aliased {
			mapField(out, field, value)
		}
	}

	return out
}

func mapField(out models.SectionData, field string, value interface{}) {
	if emptyValue(value) {
		return
	}

	name := canonicalFieldName(field)

	section := GeneralSection
	variable := name
	for _, s := range sectionOrder {
		if strings.HasPrefix(name, s+"_") {
			section = s
			variable = name[len(s)+1:]
			break
		}
	}

	// A bare "{section}_" carries no variable name
	if variable == "" {
		return
	}

	if out[section] == nil {
		out[section] = map[string]interface{}{}
	}
	out[section][variable] = value
}
