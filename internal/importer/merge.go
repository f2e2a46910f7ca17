package importer

import (
	"strings"

	"cv-builder/internal/profile"
)

// Merge applies a draft on top of an existing profile without clobbering
// confirmed data: scalar fields fill only when empty, list entries append
// only when no existing entry shares the same merge key.
func Merge(p profile.Profile, draft *Draft) profile.Profile {
	if draft == nil {
		return p
	}
	merged := p.Clone()

	fillIfEmpty(&merged.Identity.FirstName, draft.Identity.FirstName)
	fillIfEmpty(&merged.Identity.LastName, draft.Identity.LastName)
	fillIfEmpty(&merged.Identity.Email, draft.Identity.Email)
	fillIfEmpty(&merged.Identity.Phone, draft.Identity.Phone)
	fillIfEmpty(&merged.Identity.City, draft.Identity.City)
	fillIfEmpty(&merged.Identity.JobTitle, draft.Identity.JobTitle)
	fillIfEmpty(&merged.Summary, draft.Summary)

	seen := map[string]bool{}
	for _, exp := range merged.Experiences {
		seen[exp.MergeKey()] = true
	}
	for _, exp := range draft.Experiences {
		if key := exp.MergeKey(); !seen[key] {
			seen[key] = true
			merged.Experiences = append(merged.Experiences, exp)
		}
	}

	seen = map[string]bool{}
	for _, edu := range merged.Educations {
		seen[edu.MergeKey()] = true
	}
	for _, edu := range draft.Educations {
		if key := edu.MergeKey(); !seen[key] {
			seen[key] = true
			merged.Educations = append(merged.Educations, edu)
		}
	}

	seen = map[string]bool{}
	for _, cert := range merged.Certifications {
		seen[cert.MergeKey()] = true
	}
	for _, cert := range draft.Certifications {
		if key := cert.MergeKey(); !seen[key] {
			seen[key] = true
			merged.Certifications = append(merged.Certifications, cert)
		}
	}

	seenSkill := map[string]bool{}
	for _, s := range merged.Skills.Hard {
		seenSkill[strings.ToLower(s)] = true
	}
	for _, s := range draft.HardSkills {
		if key := strings.ToLower(s); !seenSkill[key] {
			seenSkill[key] = true
			merged.Skills.Hard = append(merged.Skills.Hard, s)
		}
	}

	seen = map[string]bool{}
	for _, lang := range merged.Languages {
		seen[lang.MergeKey()] = true
	}
	for _, lang := range draft.Languages {
		if key := lang.MergeKey(); !seen[key] {
			seen[key] = true
			merged.Languages = append(merged.Languages, lang)
		}
	}

	return merged
}

func fillIfEmpty(dst *string, value string) {
	if strings.TrimSpace(*dst) == "" && value != "" {
		*dst = value
	}
}
