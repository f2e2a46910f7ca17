// Package score computes the advisory ATS-style score of a candidate profile.
// Evaluate is a pure function: it reads the profile, never mutates it, and
// returns identical results on repeated calls.
package score

import (
	"regexp"
	"strings"

	"cv-builder/internal/profile"
	"cv-builder/internal/validate"
)

// Point weights of the individual criteria. The maximum tiers plus the ATS
// bonus sum to 96; the final score is clamped to 0-100 regardless.
const (
	pointsName  = 8
	pointsEmail = 8
	pointsPhone = 5
	pointsTitle = 6

	pointsSummaryLong  = 10 // >= 260 chars
	pointsSummaryMid   = 7  // >= 120 chars
	pointsSummaryShort = 4  // > 0 chars

	pointsExperienceMany = 10 // >= 2 entries
	pointsExperienceOne  = 6

	pointsMissionsMany = 10 // >= 8 bullets overall
	pointsMissionsSome = 7  // >= 3
	pointsMissionsFew  = 3  // > 0

	pointsQuantified = 7

	pointsSkillsMany = 8 // >= 10 hard skills
	pointsSkillsSome = 5 // >= 5
	pointsSkillsFew  = 3 // > 0

	pointsLanguagesTwo = 5
	pointsLanguagesOne = 3

	pointsEducation     = 5
	pointsCertification = 4
	pointsATSMode       = 10

	maxRecommendations = 10
)

// quantifiedPattern detects numeric tokens in mission text ("+25%", "30 clients").
var quantifiedPattern = regexp.MustCompile(`\b\d+([.,]\d+)?\b`)

// Report is the outcome of a score evaluation.
type Report struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// Evaluate scores the profile on a 0-100 scale and collects a French
// recommendation for every unmet criterion.
func Evaluate(p profile.Profile, atsMode bool) Report {
	score := 0
	var recos []string

	if len(p.FullName()) >= 3 {
		score += pointsName
	} else {
		recos = append(recos, "Ajoutez votre prénom et nom.")
	}
	if validate.Email(p.Identity.Email, "x") == "" {
		score += pointsEmail
	} else {
		recos = append(recos, "Ajoutez un email valide.")
	}
	if validate.Phone(p.Identity.Phone, "x") == "" {
		score += pointsPhone
	} else {
		recos = append(recos, "Ajoutez un téléphone.")
	}
	title := strings.TrimSpace(p.Identity.JobTitle)
	if len(title) >= 2 {
		score += pointsTitle
	} else {
		recos = append(recos, "Ajoutez un titre métier clair.")
	}

	switch summaryLen := len(strings.TrimSpace(p.Summary)); {
	case summaryLen >= 260:
		score += pointsSummaryLong
	case summaryLen >= 120:
		score += pointsSummaryMid
	case summaryLen > 0:
		score += pointsSummaryShort
	default:
		recos = append(recos, "Ajoutez un profil professionnel de 3–6 lignes.")
	}

	switch expCount := len(p.Experiences); {
	case expCount >= 2:
		score += pointsExperienceMany
	case expCount == 1:
		score += pointsExperienceOne
	default:
		recos = append(recos, "Ajoutez au moins une expérience professionnelle.")
	}

	missionCount := 0
	var missionText strings.Builder
	for _, exp := range p.Experiences {
		missionCount += len(exp.Missions)
		for _, m := range exp.Missions {
			missionText.WriteString(m.Text)
			missionText.WriteString(" ")
		}
	}
	switch {
	case missionCount >= 8:
		score += pointsMissionsMany
	case missionCount >= 3:
		score += pointsMissionsSome
	case missionCount > 0:
		score += pointsMissionsFew
	default:
		recos = append(recos, "Ajoutez des missions (idéal : 3–6 par expérience).")
	}

	if quantifiedPattern.MatchString(missionText.String()) {
		score += pointsQuantified
	} else {
		recos = append(recos, "Quantifiez vos résultats (ex : +25%, 30 clients…).")
	}

	switch hardCount := len(p.Skills.Hard); {
	case hardCount >= 10:
		score += pointsSkillsMany
	case hardCount >= 5:
		score += pointsSkillsSome
	case hardCount > 0:
		score += pointsSkillsFew
	default:
		recos = append(recos, "Ajoutez des compétences techniques (5–12).")
	}

	switch langCount := len(p.Languages); {
	case langCount >= 2:
		score += pointsLanguagesTwo
	case langCount == 1:
		score += pointsLanguagesOne
	default:
		recos = append(recos, "Ajoutez au moins une langue + niveau.")
	}

	if len(p.Educations) >= 1 {
		score += pointsEducation
	} else {
		recos = append(recos, "Ajoutez votre formation principale (diplôme, école).")
	}
	if len(p.Certifications) >= 1 {
		score += pointsCertification
	}

	if atsMode {
		score += pointsATSMode
	} else {
		recos = append(recos, "Activez le Mode ATS pour une mise en page compatible.")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	recos = append(recos, jobTips(title)...)
	if len(recos) > maxRecommendations {
		recos = recos[:maxRecommendations]
	}
	return Report{Score: score, Recommendations: recos}
}

// jobTips returns field-specific advice keyed on the job title.
func jobTips(title string) []string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "dévelop") || strings.Contains(t, "dev") || strings.Contains(t, "software"):
		return []string{"Tech : ajoutez des mots-clés stack alignés au poste visé."}
	case strings.Contains(t, "marketing"):
		return []string{"Marketing : ajoutez des KPI (CPC, ROAS, CTR…)."}
	case strings.Contains(t, "finance") || strings.Contains(t, "compta"):
		return []string{"Finance : ajoutez outils (Excel, ERP), normes (IFRS)."}
	}
	return nil
}
