package flow

import (
	"cv-builder/internal/profile"
	"cv-builder/internal/validate"
)

const promptWelcome = "Bonjour ! Je vais vous aider à créer votre CV. " +
	"Vous pouvez partir de zéro ou importer un CV existant."

// identityQuestion is one entry of the fixed identity sub-loop.
type identityQuestion struct {
	Field    string
	Prompt   string
	Validate func(value string) string
	Assign   func(id *profile.Identity, value string)
}

var identityQuestions = []identityQuestion{
	{
		Field:  "first_name",
		Prompt: "Quel est votre prénom ?",
		Validate: func(v string) string {
			return validate.Required(v, "Le prénom est requis.")
		},
		Assign: func(id *profile.Identity, v string) { id.FirstName = v },
	},
	{
		Field:  "last_name",
		Prompt: "Quel est votre nom de famille ?",
		Validate: func(v string) string {
			return validate.Required(v, "Le nom est requis.")
		},
		Assign: func(id *profile.Identity, v string) { id.LastName = v },
	},
	{
		Field:  "email",
		Prompt: "Quelle est votre adresse e-mail ?",
		Validate: func(v string) string {
			return validate.Email(v, "Cette adresse e-mail ne semble pas valide.")
		},
		Assign: func(id *profile.Identity, v string) { id.Email = v },
	},
	{
		Field:  "phone",
		Prompt: "Quel est votre numéro de téléphone ?",
		Validate: func(v string) string {
			return validate.Phone(v, "Ce numéro de téléphone ne semble pas valide.")
		},
		Assign: func(id *profile.Identity, v string) { id.Phone = v },
	},
	{
		Field:  "city",
		Prompt: "Dans quelle ville habitez-vous ?",
		Validate: func(v string) string {
			return validate.Required(v, "La ville est requise.")
		},
		Assign: func(id *profile.Identity, v string) { id.City = v },
	},
	{
		Field:  "job_title",
		Prompt: "Quel poste recherchez-vous ?",
		Validate: func(v string) string {
			return validate.Required(v, "L'intitulé de poste est requis.")
		},
		Assign: func(id *profile.Identity, v string) { id.JobTitle = v },
	},
}

// stepPrompts are the bot messages recorded when a step is entered.
var stepPrompts = map[Step]string{
	StepSummary:        "Décrivez votre parcours et vos atouts en quelques phrases.",
	StepExperiences:    "Ajoutez vos expériences professionnelles, puis continuez quand vous avez terminé.",
	StepEducation:      "Ajoutez vos formations et diplômes.",
	StepCertifications: "Ajoutez vos certifications si vous en avez.",
	StepHardSkills:     "Listez vos compétences techniques, séparées par des virgules.",
	StepSoftSkills:     "Listez vos savoir-être, puis vos centres d'intérêt.",
	StepLanguages:      "Quelles langues parlez-vous ?",
	StepReview:         "Voici votre CV. Vous pouvez modifier une section ou terminer.",
	StepFinished:       "Votre CV est prêt ! Vous pouvez l'exporter en PDF ou en DOCX.",
}

// enterStep records the transition and the step's bot prompt. The identity
// step prompts per question instead.
func (s *Session) enterStep(step Step) {
	s.Flow.Step = step
	if step == StepIdentity {
		s.Flow.IdentityIndex = 0
		s.say(RoleBot, identityQuestions[0].Prompt)
		return
	}
	s.say(RoleBot, stepPrompts[step])
}
