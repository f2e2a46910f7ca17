package importer

import (
	"fmt"
	"strings"
)

// Preview renders a short human-readable summary of what a draft contains,
// shown to the user before they confirm the import.
func Preview(draft *Draft) string {
	if draft == nil {
		return "Aucune donnée exploitable détectée."
	}

	var parts []string
	if draft.Identity.FirstName != "" || draft.Identity.LastName != "" {
		parts = append(parts, fmt.Sprintf("Nom : %s", strings.TrimSpace(draft.Identity.FirstName+" "+draft.Identity.LastName)))
	}
	if draft.Identity.JobTitle != "" {
		parts = append(parts, fmt.Sprintf("Poste : %s", draft.Identity.JobTitle))
	}
	if draft.Identity.Email != "" {
		parts = append(parts, fmt.Sprintf("Email : %s", draft.Identity.Email))
	}
	if draft.Identity.Phone != "" {
		parts = append(parts, fmt.Sprintf("Téléphone : %s", draft.Identity.Phone))
	}
	if draft.Summary != "" {
		parts = append(parts, "Résumé détecté")
	}
	if n := len(draft.Experiences); n > 0 {
		parts = append(parts, fmt.Sprintf("%d expérience(s)", n))
	}
	if n := len(draft.Educations); n > 0 {
		parts = append(parts, fmt.Sprintf("%d formation(s)", n))
	}
	if n := len(draft.Certifications); n > 0 {
		parts = append(parts, fmt.Sprintf("%d certification(s)", n))
	}
	if n := len(draft.HardSkills); n > 0 {
		parts = append(parts, fmt.Sprintf("%d compétence(s)", n))
	}
	if n := len(draft.Languages); n > 0 {
		parts = append(parts, fmt.Sprintf("%d langue(s)", n))
	}
	if len(parts) == 0 {
		return "Aucune donnée exploitable détectée."
	}
	return "Éléments détectés :\n- " + strings.Join(parts, "\n- ")
}
