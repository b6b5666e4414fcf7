package services

import "invitaciones_server/models"

// draftValue looks up a variable slot in the draft's flat field map. The
// customizer stores fields under their flat "{section}_{variable}" name, or
// under a legacy alias of it; the canonical spelling takes precedence over
// an alias when both are present. Only fields the user actually touched
// count, and empty values never override anything.
func draftValue(draft *models.Draft, section, slot string) (interface{}, bool) {
	if draft == nil {
		return nil, false
	}

	canonical := section + "_" + slot
	if value, ok := draft.CustomizerData[canonical]; ok &&
		draft.TouchedFields[canonical] && !emptyValue(value) {
		return value, true
	}

	for field, value := range draft.CustomizerData {
		if field == canonical || canonicalFieldName(field) != canonical {
			continue
		}
		if !draft.TouchedFields[field] || emptyValue(value) {
			continue
		}
		return value, true
	}
	return nil, false
}

// ResolveSections computes the final per-section values for rendering.
// Precedence, highest first: touched non-empty draft fields, freshly fetched
// backend data, template defaults. Every variable slot the template declares
// is resolved independently; slots with no candidate in any source stay
// absent and the renderer shows its placeholder. The inputs are never
// mutated, so resolving twice with the same arguments yields equal output.
func ResolveSections(tmpl *models.Template, draft *models.Draft, fetched models.SectionData) models.SectionData {
	out := models.SectionData{}
	if tmpl == nil {
		return out
	}

	for section, slots := range tmpl.Sections {
		for _, slot := range slots {
			var value interface{}

			if v, ok := draftValue(draft, section, slot); ok {
				value = v
			} else if v, ok := fetched[section][slot]; ok && !emptyValue(v) {
				value = v
			} else if v, ok := tmpl.Defaults[section][slot]; ok && !emptyValue(v) {
				value = v
			} else {
				continue
			}

			if out[section] == nil {
				out[section] = map[string]interface{}{}
			}
			out[section][slot] = value
		}
	}

	return out
}
