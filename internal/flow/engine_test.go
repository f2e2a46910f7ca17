package flow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-builder/internal/importer"
	"cv-builder/internal/profile"
	"cv-builder/internal/render"
)

var identityAnswers = []string{
	"Marie", "Dupont", "marie@example.com", "+33612345678", "Lyon", "Développeuse Full-Stack",
}

// sessionAt drives a fresh session through the wizard until it reaches the
// requested step.
func sessionAt(t *testing.T, target Step) *Session {
	t.Helper()
	s := NewSession()
	if target == StepWelcome {
		return s
	}

	require.NoError(t, Apply(s, StartFresh{}))
	if target == StepIdentity {
		return s
	}

	for _, answer := range identityAnswers {
		require.NoError(t, Apply(s, AnswerIdentity{Text: answer}))
	}
	if target == StepSummary {
		return s
	}

	require.NoError(t, Apply(s, SaveSummary{Text: "Développeuse web expérimentée."}))
	for s.Flow.Step != target {
		require.Contains(t, continueOrder, s.Flow.Step, "cannot reach step %s", target)
		require.NoError(t, Apply(s, Continue{}))
	}
	return s
}

func validExperience() profile.Experience {
	return profile.Experience{
		Role:    "Développeuse",
		Company: "Acme",
		StartYM: "2021-01",
		EndYM:   "2023-01",
	}
}

func TestIdentityAdvanceAndReject(t *testing.T) {
	s := sessionAt(t, StepIdentity)
	assert.Equal(t, 0, s.Flow.IdentityIndex)

	err := Apply(s, AnswerIdentity{Text: "   "})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "first_name", vErr.Field)
	assert.Equal(t, 0, s.Flow.IdentityIndex)

	require.NoError(t, Apply(s, AnswerIdentity{Text: "Marie"}))
	assert.Equal(t, 1, s.Flow.IdentityIndex)
	assert.Equal(t, "Marie", s.Profile.Identity.FirstName)
}

func TestIdentityEmailValidation(t *testing.T) {
	s := sessionAt(t, StepIdentity)
	require.NoError(t, Apply(s, AnswerIdentity{Text: "Marie"}))
	require.NoError(t, Apply(s, AnswerIdentity{Text: "Dupont"}))

	err := Apply(s, AnswerIdentity{Text: "not-an-email"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
	assert.Empty(t, s.Profile.Identity.Email)

	require.NoError(t, Apply(s, AnswerIdentity{Text: "marie@example.com"}))
	assert.Equal(t, "marie@example.com", s.Profile.Identity.Email)
}

func TestIdentityCompletesToSummary(t *testing.T) {
	s := sessionAt(t, StepSummary)
	assert.Equal(t, StepSummary, s.Flow.Step)
	assert.Equal(t, "Développeuse Full-Stack", s.Profile.Identity.JobTitle)
}

func TestWalkthroughToFinished(t *testing.T) {
	s := sessionAt(t, StepReview)
	require.NoError(t, Apply(s, Finish{}))
	assert.Equal(t, StepFinished, s.Flow.Step)
}

func TestExperienceValidation(t *testing.T) {
	tests := []struct {
		name  string
		mutE  func(e *profile.Experience)
		field string
	}{
		{"missing role", func(e *profile.Experience) { e.Role = "" }, "role"},
		{"missing company", func(e *profile.Experience) { e.Company = "" }, "company"},
		{"bad start", func(e *profile.Experience) { e.StartYM = "2021" }, "start_ym"},
		{"bad end", func(e *profile.Experience) { e.EndYM = "soon" }, "end_ym"},
		{"inverted range", func(e *profile.Experience) { e.StartYM = "2023-05"; e.EndYM = "2021-01" }, "end_ym"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := sessionAt(t, StepExperiences)
			exp := validExperience()
			tc.mutE(&exp)

			err := Apply(s, AddExperience{Experience: exp})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Empty(t, s.Profile.Experiences)
		})
	}
}

func TestExperienceCurrentNeedsNoEnd(t *testing.T) {
	s := sessionAt(t, StepExperiences)
	exp := validExperience()
	exp.EndYM = ""
	exp.IsCurrent = true

	require.NoError(t, Apply(s, AddExperience{Experience: exp}))
	require.Len(t, s.Profile.Experiences, 1)
	assert.NotEmpty(t, s.Profile.Experiences[0].ID)
}

func TestMissionLifecycle(t *testing.T) {
	s := sessionAt(t, StepExperiences)
	require.NoError(t, Apply(s, AddExperience{Experience: validExperience()}))
	expID := s.Profile.Experiences[0].ID

	require.NoError(t, Apply(s, AddMission{ExperienceID: expID, Text: "Conception d'API"}))
	require.Len(t, s.Profile.Experiences[0].Missions, 1)
	missionID := s.Profile.Experiences[0].Missions[0].ID

	require.NoError(t, Apply(s, UpdateMission{ExperienceID: expID, MissionID: missionID, Text: "Conception d'API REST"}))
	assert.Equal(t, "Conception d'API REST", s.Profile.Experiences[0].Missions[0].Text)

	require.NoError(t, Apply(s, DeleteMission{ExperienceID: expID, MissionID: missionID}))
	assert.Empty(t, s.Profile.Experiences[0].Missions)

	err := Apply(s, DeleteMission{ExperienceID: expID, MissionID: missionID})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestUndoRestoresPriorProfile(t *testing.T) {
	s := sessionAt(t, StepExperiences)
	before := s.Profile.Clone()

	require.NoError(t, Apply(s, AddExperience{Experience: validExperience()}))
	require.Len(t, s.Profile.Experiences, 1)

	require.NoError(t, Apply(s, Back{}))
	assert.Equal(t, before, s.Profile)
	assert.Equal(t, StepExperiences, s.Flow.Step)
}

func TestUndoEmptyStack(t *testing.T) {
	s := NewSession()
	assert.ErrorIs(t, Apply(s, Back{}), ErrNothingToUndo)
}

func TestUndoStackBounded(t *testing.T) {
	s := sessionAt(t, StepHardSkills)
	s.SetUndoDepth(3)

	for i := 0; i < 5; i++ {
		require.NoError(t, Apply(s, SetHardSkills{Text: fmt.Sprintf("Skill%d", i)}))
	}
	assert.Equal(t, 3, s.UndoDepth())
}

func TestHardSkillsSplitTrimDedupe(t *testing.T) {
	s := sessionAt(t, StepHardSkills)
	require.NoError(t, Apply(s, SetHardSkills{Text: "Python, Python, SQL "}))
	assert.Equal(t, []string{"Python", "SQL"}, s.Profile.Skills.Hard)
}

func TestSoftSkillsAndInterests(t *testing.T) {
	s := sessionAt(t, StepSoftSkills)
	require.NoError(t, Apply(s, SetSoftSkills{Text: "Rigueur, Autonomie"}))
	require.NoError(t, Apply(s, SetInterests{Text: "Lecture, Sport"}))
	assert.Equal(t, []string{"Rigueur", "Autonomie"}, s.Profile.Skills.Soft)
	assert.Equal(t, []string{"Lecture", "Sport"}, s.Profile.Skills.Interests)
}

func TestLanguageRules(t *testing.T) {
	s := sessionAt(t, StepLanguages)

	require.NoError(t, Apply(s, AddLanguage{Language: "Anglais", Level: "Courant"}))

	err := Apply(s, AddLanguage{Language: "Anglais", Level: "Débutant"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "language", vErr.Field)

	err = Apply(s, AddLanguage{Language: "Klingon", Level: "Courant"})
	require.ErrorAs(t, err, &vErr)

	err = Apply(s, AddLanguage{Language: "Espagnol", Level: "Parfait"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "level", vErr.Field)

	require.Len(t, s.Profile.Languages, 1)
}

func TestATSModeForcesSoberTemplate(t *testing.T) {
	s := NewSession()
	require.NoError(t, Apply(s, SelectTemplate{TemplateID: render.TemplateModern}))
	require.NoError(t, Apply(s, ToggleATSMode{}))

	assert.True(t, s.UI.ATSMode)
	assert.Equal(t, render.TemplateSober, s.UI.SelectedTemplate)

	err := Apply(s, SelectTemplate{TemplateID: render.TemplateModern})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	require.NoError(t, Apply(s, ToggleATSMode{}))
	require.NoError(t, Apply(s, SelectTemplate{TemplateID: render.TemplateModern}))
	assert.Equal(t, render.TemplateModern, s.UI.SelectedTemplate)
}

func TestPresentationActionsCreateNoUndoPoints(t *testing.T) {
	s := NewSession()
	require.NoError(t, Apply(s, ToggleATSMode{}))
	require.NoError(t, Apply(s, SelectTemplate{TemplateID: render.TemplateClassic}))
	assert.Equal(t, 0, s.UndoDepth())
}

func TestApplyImportFromWelcome(t *testing.T) {
	t.Run("named draft jumps to review", func(t *testing.T) {
		s := NewSession()
		draft := &importer.Draft{}
		draft.Identity.FirstName = "Marie"
		s.StageImport(draft)

		require.NoError(t, Apply(s, ApplyImport{}))
		assert.Equal(t, StepReview, s.Flow.Step)
		assert.Equal(t, "Marie", s.Profile.Identity.FirstName)
		assert.Nil(t, s.UI.ImportDraft)
	})

	t.Run("anonymous draft starts identity", func(t *testing.T) {
		s := NewSession()
		s.StageImport(&importer.Draft{Summary: "Un résumé."})

		require.NoError(t, Apply(s, ApplyImport{}))
		assert.Equal(t, StepIdentity, s.Flow.Step)
		assert.Equal(t, "Un résumé.", s.Profile.Summary)
	})

	t.Run("no staged draft", func(t *testing.T) {
		s := NewSession()
		err := Apply(s, ApplyImport{})
		var iErr *InvalidActionError
		require.ErrorAs(t, err, &iErr)
	})
}

func TestEditSectionFromReview(t *testing.T) {
	s := sessionAt(t, StepReview)
	require.NoError(t, Apply(s, EditSection{Step: StepSummary}))
	assert.Equal(t, StepSummary, s.Flow.Step)

	require.NoError(t, Apply(s, SaveSummary{Text: "Résumé mis à jour."}))
	assert.Equal(t, StepExperiences, s.Flow.Step)
}

func TestEditSectionRejectsNonSections(t *testing.T) {
	s := sessionAt(t, StepReview)
	err := Apply(s, EditSection{Step: StepFinished})
	var iErr *InvalidActionError
	require.ErrorAs(t, err, &iErr)
}

func TestInvalidActionForStep(t *testing.T) {
	s := NewSession()
	err := Apply(s, Continue{})
	var iErr *InvalidActionError
	require.ErrorAs(t, err, &iErr)
	assert.Equal(t, StepWelcome, iErr.Step)
}

func TestResetKeepsSessionID(t *testing.T) {
	s := sessionAt(t, StepReview)
	id := s.ID
	require.NoError(t, Apply(s, Reset{}))

	assert.Equal(t, id, s.ID)
	assert.Equal(t, StepWelcome, s.Flow.Step)
	assert.Equal(t, render.DefaultTemplate, s.UI.SelectedTemplate)
	assert.Empty(t, s.Profile.Identity.FirstName)
	assert.Equal(t, 0, s.UndoDepth())
}

func TestDecodeActionRoundTrip(t *testing.T) {
	action, err := DecodeAction("answer_identity", []byte(`{"text":"Marie"}`))
	require.NoError(t, err)
	assert.Equal(t, AnswerIdentity{Text: "Marie"}, action)

	action, err = DecodeAction("select_template", []byte(`{"template_id":"t2"}`))
	require.NoError(t, err)
	assert.Equal(t, SelectTemplate{TemplateID: "t2"}, action)

	_, err = DecodeAction("warp_ten", nil)
	var uErr *UnknownActionError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "warp_ten", uErr.Type)
}
