// Package flow implements the guided-interview state machine. A Session owns
// the candidate profile, the current step, and a bounded undo history; the
// engine applies tagged actions as a reducer and every profile mutation goes
// through it.
package flow

// Step names a state of the interview state machine.
type Step string

// Interview steps, in wizard order.
const (
	StepWelcome        Step = "welcome"
	StepIdentity       Step = "identity"
	StepSummary        Step = "summary"
	StepExperiences    Step = "experiences"
	StepEducation      Step = "education"
	StepCertifications Step = "certifications"
	StepHardSkills     Step = "hard_skills"
	StepSoftSkills     Step = "soft_skills"
	StepLanguages      Step = "languages"
	StepReview         Step = "review"
	StepFinished       Step = "finished"
)

// continueOrder maps each loop step to its successor for the Continue action.
var continueOrder = map[Step]Step{
	StepExperiences:    StepEducation,
	StepEducation:      StepCertifications,
	StepCertifications: StepHardSkills,
	StepHardSkills:     StepSoftSkills,
	StepSoftSkills:     StepLanguages,
	StepLanguages:      StepReview,
}

// editableSteps are the Review shortcuts: sections the user can jump back
// into from the Review step.
var editableSteps = map[Step]bool{
	StepIdentity:       true,
	StepSummary:        true,
	StepExperiences:    true,
	StepEducation:      true,
	StepCertifications: true,
	StepHardSkills:     true,
	StepSoftSkills:     true,
	StepLanguages:      true,
}

// KnownStep reports whether s is one of the interview steps.
func KnownStep(s Step) bool {
	switch s {
	case StepWelcome, StepIdentity, StepSummary, StepExperiences, StepEducation,
		StepCertifications, StepHardSkills, StepSoftSkills, StepLanguages,
		StepReview, StepFinished:
		return true
	}
	return false
}
