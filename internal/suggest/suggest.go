// Package suggest provides the fixed suggestion sets presented by the tag
// and language widgets. Hard-skill sets are keyed on the job title entered
// during the identity step.
package suggest

import "strings"

var (
	itSkills = []string{
		"JavaScript", "TypeScript", "HTML", "CSS", "React", "Node.js", "SQL",
		"Docker", "Git", "CI/CD", "REST API", "Python", "PostgreSQL",
	}
	marketingSkills = []string{
		"SEO", "SEA", "Google Ads", "Meta Ads", "GA4", "GTM", "CRM",
		"Emailing", "Content marketing", "Copywriting", "KPI",
	}
	financeSkills = []string{
		"Excel avancé", "Contrôle de gestion", "Reporting", "Budget",
		"Forecast", "ERP", "Power BI", "IFRS",
	}

	softSkills = []string{
		"Communication", "Leadership", "Esprit d'équipe", "Autonomie", "Rigueur",
		"Organisation", "Curiosité", "Résolution de problèmes", "Adaptabilité",
		"Proactivité", "Gestion du temps", "Esprit d'analyse", "Sens du service",
		"Créativité",
	}
	interests = []string{
		"Sport", "Lecture", "Musique", "Voyages", "Photographie", "Bénévolat",
		"Tech / veille", "Jeux d'échecs", "Cuisine", "Randonnée",
	}
	languages = []string{
		"Français", "Anglais", "Espagnol", "Allemand", "Italien", "Portugais",
		"Arabe", "Chinois", "Japonais", "Russe", "Autre",
	}
	levels = []string{
		"Maternelle", "Débutant", "Intermédiaire", "Avancé", "Courant",
		"Bilingue", "Technique",
	}
)

// HardSkills returns the suggestion set matching the job title. Unknown
// titles get a mixed sample of every set.
func HardSkills(jobTitle string) []string {
	title := strings.ToLower(jobTitle)
	switch {
	case containsAny(title, "dévelop", "dev", "software", "data"):
		return clone(itSkills)
	case containsAny(title, "marketing", "growth", "communication"):
		return clone(marketingSkills)
	case containsAny(title, "finance", "compta"):
		return clone(financeSkills)
	}

	mixed := make([]string, 0, 15)
	mixed = append(mixed, itSkills[:5]...)
	mixed = append(mixed, marketingSkills[:5]...)
	mixed = append(mixed, financeSkills[:5]...)
	return mixed
}

// SoftSkills returns the fixed soft-skill suggestion list.
func SoftSkills() []string { return clone(softSkills) }

// Interests returns the fixed hobby suggestion list.
func Interests() []string { return clone(interests) }

// Languages returns the fixed language list offered by the language widget.
func Languages() []string { return clone(languages) }

// Levels returns the fixed proficiency-level list.
func Levels() []string { return clone(levels) }

// KnownLanguage reports whether name is one of the offered languages.
func KnownLanguage(name string) bool {
	for _, l := range languages {
		if l == name {
			return true
		}
	}
	return false
}

// KnownLevel reports whether name is one of the offered proficiency levels.
func KnownLevel(name string) bool {
	for _, l := range levels {
		if l == name {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clone(src []string) []string {
	return append([]string(nil), src...)
}
