package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/profile"
)

func TestMergeNilDraft(t *testing.T) {
	p := profile.New()
	p.Identity.FirstName = "Jean"

	merged := Merge(p, nil)
	assert.Equal(t, p, merged)
}

func TestMergeFillsOnlyEmptyScalars(t *testing.T) {
	p := profile.New()
	p.Identity.FirstName = "Jean"
	p.Identity.LastName = "Martin"
	p.Summary = "Résumé existant."

	draft := &Draft{}
	draft.Identity.FirstName = "Marie"
	draft.Identity.Email = "marie@example.com"
	draft.Summary = "Résumé importé."

	merged := Merge(p, draft)
	assert.Equal(t, "Jean", merged.Identity.FirstName)
	assert.Equal(t, "Martin", merged.Identity.LastName)
	assert.Equal(t, "marie@example.com", merged.Identity.Email)
	assert.Equal(t, "Résumé existant.", merged.Summary)
}

func TestMergeDeduplicatesExperiences(t *testing.T) {
	p := profile.New()
	p.Experiences = []profile.Experience{
		{ID: profile.NewID(), Role: "Développeur", Company: "Acme"},
	}

	draft := &Draft{
		Experiences: []profile.Experience{
			{ID: profile.NewID(), Role: "développeur", Company: "ACME"},
			{ID: profile.NewID(), Role: "Lead Développeur", Company: "Globex"},
		},
	}

	merged := Merge(p, draft)
	require.Len(t, merged.Experiences, 2)
	assert.Equal(t, "Acme", merged.Experiences[0].Company)
	assert.Equal(t, "Globex", merged.Experiences[1].Company)
}

func TestMergeUnionsSkillsCaseInsensitively(t *testing.T) {
	p := profile.New()
	p.Skills.Hard = []string{"Python"}

	draft := &Draft{HardSkills: []string{"python", "Go"}}

	merged := Merge(p, draft)
	assert.Equal(t, []string{"Python", "Go"}, merged.Skills.Hard)
}

func TestMergeDeduplicatesLanguages(t *testing.T) {
	p := profile.New()
	p.Languages = []profile.Language{
		{ID: profile.NewID(), Language: "Anglais", Level: "Courant"},
	}

	draft := &Draft{
		Languages: []profile.Language{
			{ID: profile.NewID(), Language: "anglais", Level: "Intermédiaire"},
			{ID: profile.NewID(), Language: "Espagnol", Level: "Non précisé"},
		},
	}

	merged := Merge(p, draft)
	require.Len(t, merged.Languages, 2)
	assert.Equal(t, "Courant", merged.Languages[0].Level)
	assert.Equal(t, "Espagnol", merged.Languages[1].Language)
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	p := profile.New()
	p.Skills.Hard = []string{"Python"}

	draft := &Draft{HardSkills: []string{"Go"}}

	_ = Merge(p, draft)
	assert.Equal(t, []string{"Python"}, p.Skills.Hard)
}
