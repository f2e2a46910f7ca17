package importer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCV = `Marie Dupont
Développeuse Full-Stack
marie.dupont@example.com
+33 6 12 34 56 78

Profil professionnel
Développeuse web avec cinq ans de pratique sur des applications SaaS à fort trafic.

Expérience professionnelle
Développeur Full-Stack
2021 — 2023
Acme Corp
- Conception d'API REST
- Migration vers le cloud

Formation
Master Informatique
Université de Lyon
2019 - 2021

Compétences
Python, SQL, Docker

Langues
Anglais - Courant
Espagnol
`

func TestParseFreeTextEmpty(t *testing.T) {
	assert.Nil(t, ParseFreeText(""))
	assert.Nil(t, ParseFreeText("   \n\n\t  "))
}

func TestParseFreeTextIdentity(t *testing.T) {
	draft := ParseFreeText(sampleCV)
	require.NotNil(t, draft)

	assert.Equal(t, "Marie", draft.Identity.FirstName)
	assert.Equal(t, "Dupont", draft.Identity.LastName)
	assert.Equal(t, "marie.dupont@example.com", draft.Identity.Email)
	assert.Equal(t, "+33 6 12 34 56 78", draft.Identity.Phone)
	assert.Equal(t, "Développeuse Full-Stack", draft.Identity.JobTitle)
}

func TestParseFreeTextSummary(t *testing.T) {
	draft := ParseFreeText(sampleCV)
	require.NotNil(t, draft)
	assert.Contains(t, draft.Summary, "applications SaaS")
}

func TestParseFreeTextExperience(t *testing.T) {
	draft := ParseFreeText(sampleCV)
	require.NotNil(t, draft)
	require.Len(t, draft.Experiences, 1)

	exp := draft.Experiences[0]
	assert.Equal(t, "Développeur Full-Stack", exp.Role)
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "2021-01", exp.StartYM)
	assert.Equal(t, "2023-01", exp.EndYM)
	assert.False(t, exp.IsCurrent)
	require.Len(t, exp.Missions, 2)
	assert.Equal(t, "Conception d'API REST", exp.Missions[0].Text)
	assert.Equal(t, "Migration vers le cloud", exp.Missions[1].Text)
}

func TestParseFreeTextCurrentExperience(t *testing.T) {
	text := `Expérience
Data Engineer
janvier 2022 - aujourd'hui
Globex
- Construction de pipelines de données
`
	draft := ParseFreeText(text)
	require.NotNil(t, draft)
	require.Len(t, draft.Experiences, 1)

	exp := draft.Experiences[0]
	assert.Equal(t, "Data Engineer", exp.Role)
	assert.Equal(t, "Globex", exp.Company)
	assert.Equal(t, "2022-01", exp.StartYM)
	assert.Empty(t, exp.EndYM)
	assert.True(t, exp.IsCurrent)
}

func TestParseFreeTextEducation(t *testing.T) {
	draft := ParseFreeText(sampleCV)
	require.NotNil(t, draft)
	require.Len(t, draft.Educations, 1)

	edu := draft.Educations[0]
	assert.Equal(t, "Master Informatique", edu.Degree)
	assert.Equal(t, "Université de Lyon", edu.Institution)
	assert.Equal(t, "2019-09", edu.StartYM)
	assert.Equal(t, "2021-06", edu.EndYM)
}

func TestParseFreeTextEducationSingleYear(t *testing.T) {
	text := `Formation
Licence Histoire
2018
`
	draft := ParseFreeText(text)
	require.NotNil(t, draft)
	require.Len(t, draft.Educations, 1)
	assert.Equal(t, "2018-09", draft.Educations[0].StartYM)
	assert.Equal(t, "2021-06", draft.Educations[0].EndYM)
}

func TestParseFreeTextSkillsAndLanguages(t *testing.T) {
	draft := ParseFreeText(sampleCV)
	require.NotNil(t, draft)

	assert.Equal(t, []string{"Python", "SQL", "Docker"}, draft.HardSkills)

	require.Len(t, draft.Languages, 2)
	assert.Equal(t, "Anglais", draft.Languages[0].Language)
	assert.Equal(t, "Courant", draft.Languages[0].Level)
	assert.Equal(t, "Espagnol", draft.Languages[1].Language)
	assert.Equal(t, "Non précisé", draft.Languages[1].Level)
}

func TestParseFreeTextSkillsCap(t *testing.T) {
	var items []string
	for i := 1; i <= 25; i++ {
		items = append(items, fmt.Sprintf("Skill%02d", i))
	}
	text := "Compétences\n" + strings.Join(items, ", ") + "\n"

	draft := ParseFreeText(text)
	require.NotNil(t, draft)
	assert.Len(t, draft.HardSkills, maxSkills)
	assert.Equal(t, "Skill01", draft.HardSkills[0])
}

func TestParseFreeTextCertifications(t *testing.T) {
	text := `Certifications
AWS Solutions Architect - 2022
Scrum Master
`
	draft := ParseFreeText(text)
	require.NotNil(t, draft)
	require.Len(t, draft.Certifications, 2)
	assert.Equal(t, "AWS Solutions Architect", draft.Certifications[0].Name)
	assert.Equal(t, "2022", draft.Certifications[0].Year)
	assert.Equal(t, "Scrum Master", draft.Certifications[1].Name)
	assert.Empty(t, draft.Certifications[1].Year)
}

func TestDetectSection(t *testing.T) {
	tests := []struct {
		line string
		want Section
	}{
		{"Expérience professionnelle", SectionExperience},
		{"EXPERIENCE", SectionExperience},
		{"Compétences :", SectionSkills},
		{"Formation", SectionEducation},
		{"Langues", SectionLanguages},
		{"Certifications", SectionCertifications},
		{"Profil", SectionSummary},
		{"Une grande expérience des projets", SectionNone},
		{"Je parle trois langues couramment", SectionNone},
		{"", SectionNone},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectSection(tc.line))
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "Aucune donnée exploitable détectée.", Preview(nil))

	draft := ParseFreeText(sampleCV)
	require.NotNil(t, draft)
	preview := Preview(draft)
	assert.Contains(t, preview, "Marie Dupont")
	assert.Contains(t, preview, "1 expérience(s)")
	assert.Contains(t, preview, "3 compétence(s)")
}
