package flow

import (
	"strings"

	"cv-builder/internal/dates"
	"cv-builder/internal/importer"
	"cv-builder/internal/profile"
	"cv-builder/internal/render"
	"cv-builder/internal/suggest"
	"cv-builder/internal/validate"
)

// List caps for the tag-collection steps.
const (
	maxHardSkills = 20
	maxSoftSkills = 20
	maxInterests  = 20
)

// Apply runs one action against the session as a reducer. Validation
// failures return a *ValidationError and leave the session untouched;
// actions unavailable in the current step return a *InvalidActionError.
// Profile-mutating actions push an undo snapshot before applying;
// presentation-only actions (ToggleATSMode, SelectTemplate) do not.
func Apply(s *Session, action Action) error {
	switch a := action.(type) {
	case StartFresh:
		if s.Flow.Step != StepWelcome {
			return &InvalidActionError{Step: s.Flow.Step, Action: a.Name()}
		}
		s.snapshot()
		s.enterStep(StepIdentity)
		return nil

	case AnswerIdentity:
		return applyAnswerIdentity(s, a)

	case SaveSummary:
		if s.Flow.Step != StepSummary {
			return &InvalidActionError{Step: s.Flow.Step, Action: a.Name()}
		}
		text := strings.TrimSpace(a.Text)
		if text == "" {
			return &ValidationError{Field: "summary", Message: "Le résumé ne peut pas être vide."}
		}
		s.snapshot()
		s.say(RoleUser, text)
		s.Profile.Summary = text
		s.enterStep(StepExperiences)
		return nil

	case AddExperience:
		return applyAddExperience(s, a)
	case UpdateExperience:
		return applyUpdateExperience(s, a)
	case DeleteExperience:
		return applyDeleteExperience(s, a)

	case AddMission:
		return applyAddMission(s, a)
	case UpdateMission:
		return applyUpdateMission(s, a)
	case DeleteMission:
		return applyDeleteMission(s, a)

	case AddEducation:
		return applyAddEducation(s, a)
	case UpdateEducation:
		return applyUpdateEducation(s, a)
	case DeleteEducation:
		return applyDeleteEducation(s, a)

	case AddCertification:
		return applyAddCertification(s, a)
	case UpdateCertification:
		return applyUpdateCertification(s, a)
	case DeleteCertification:
		return applyDeleteCertification(s, a)

	case SetHardSkills:
		if err := requireStep(s, a.Name(), StepHardSkills); err != nil {
			return err
		}
		s.snapshot()
		s.Profile.Skills.Hard = profile.AppendUnique(nil, profile.SplitList(a.Text), maxHardSkills)
		return nil

	case SetSoftSkills:
		if err := requireStep(s, a.Name(), StepSoftSkills); err != nil {
			return err
		}
		s.snapshot()
		s.Profile.Skills.Soft = profile.AppendUnique(nil, profile.SplitList(a.Text), maxSoftSkills)
		return nil

	case SetInterests:
		if err := requireStep(s, a.Name(), StepSoftSkills); err != nil {
			return err
		}
		s.snapshot()
		s.Profile.Skills.Interests = profile.AppendUnique(nil, profile.SplitList(a.Text), maxInterests)
		return nil

	case AddLanguage:
		return applyAddLanguage(s, a)

	case RemoveLanguage:
		if err := requireStep(s, a.Name(), StepLanguages); err != nil {
			return err
		}
		for i, lang := range s.Profile.Languages {
			if lang.ID == a.ID {
				s.snapshot()
				s.Profile.Languages = append(s.Profile.Languages[:i], s.Profile.Languages[i+1:]...)
				return nil
			}
		}
		return &NotFoundError{Kind: "language", ID: a.ID}

	case Continue:
		next, ok := continueOrder[s.Flow.Step]
		if !ok {
			return &InvalidActionError{Step: s.Flow.Step, Action: a.Name()}
		}
		s.snapshot()
		s.enterStep(next)
		return nil

	case EditSection:
		if s.Flow.Step != StepReview {
			return &InvalidActionError{Step: s.Flow.Step, Action: a.Name()}
		}
		if !editableSteps[a.Step] {
			return &InvalidActionError{Step: s.Flow.Step, Action: a.Name(), Message: "section is not editable"}
		}
		s.snapshot()
		s.enterStep(a.Step)
		return nil

	case Finish:
		if s.Flow.Step != StepReview {
			return &InvalidActionError{Step: s.Flow.Step, Action: a.Name()}
		}
		s.snapshot()
		s.enterStep(StepFinished)
		return nil

	case Back:
		return s.restoreLast()

	case Reset:
		s.Profile = profile.New()
		s.Flow = FlowState{Step: StepWelcome}
		s.UI = UIState{SelectedTemplate: render.DefaultTemplate}
		s.undo = nil
		s.say(RoleBot, promptWelcome)
		return nil

	case ToggleATSMode:
		s.UI.ATSMode = !s.UI.ATSMode
		if s.UI.ATSMode && s.UI.SelectedTemplate == render.TemplateModern {
			s.UI.SelectedTemplate = render.TemplateSober
		}
		return nil

	case SelectTemplate:
		if !render.KnownTemplate(a.TemplateID) {
			return &ValidationError{Field: "template_id", Message: "Modèle de CV inconnu."}
		}
		if s.UI.ATSMode && a.TemplateID == render.TemplateModern {
			return &ValidationError{
				Field:   "template_id",
				Message: "Ce modèle n'est pas disponible en mode ATS.",
			}
		}
		s.UI.SelectedTemplate = a.TemplateID
		return nil

	case ApplyImport:
		return applyImport(s, a)

	default:
		return &UnknownActionError{Type: action.Name()}
	}
}

func requireStep(s *Session, action string, steps ...Step) error {
	for _, step := range steps {
		if s.Flow.Step == step {
			return nil
		}
	}
	return &InvalidActionError{Step: s.Flow.Step, Action: action}
}

func applyAnswerIdentity(s *Session, a AnswerIdentity) error {
	if s.Flow.Step != StepIdentity {
		return &InvalidActionError{Step: s.Flow.Step, Action: a.Name()}
	}
	question := identityQuestions[s.Flow.IdentityIndex]
	answer := strings.TrimSpace(a.Text)
	if msg := question.Validate(answer); msg != "" {
		s.say(RoleSystem, msg)
		return &ValidationError{Field: question.Field, Message: msg}
	}

	s.snapshot()
	s.say(RoleUser, answer)
	question.Assign(&s.Profile.Identity, answer)

	if s.Flow.IdentityIndex+1 < len(identityQuestions) {
		s.Flow.IdentityIndex++
		s.say(RoleBot, identityQuestions[s.Flow.IdentityIndex].Prompt)
		return nil
	}
	s.enterStep(StepSummary)
	return nil
}

// validateExperience enforces the experience form invariant: company and
// role present, start month parses, and unless current the end month parses
// and does not precede the start.
func validateExperience(exp profile.Experience) error {
	if msg := validate.Required(exp.Role, "Le poste est requis."); msg != "" {
		return &ValidationError{Field: "role", Message: msg}
	}
	if msg := validate.Required(exp.Company, "L'entreprise est requise."); msg != "" {
		return &ValidationError{Field: "company", Message: msg}
	}
	if _, ok := dates.ParseYM(exp.StartYM); !ok {
		return &ValidationError{Field: "start_ym", Message: "La date de début doit être au format AAAA-MM."}
	}
	if !exp.IsCurrent {
		if _, ok := dates.ParseYM(exp.EndYM); !ok {
			return &ValidationError{Field: "end_ym", Message: "La date de fin doit être au format AAAA-MM."}
		}
		if _, ok := dates.MonthDiff(exp.StartYM, exp.EndYM); !ok {
			return &ValidationError{Field: "end_ym", Message: "La date de fin doit être postérieure à la date de début."}
		}
	}
	return nil
}

func applyAddExperience(s *Session, a AddExperience) error {
	if err := requireStep(s, a.Name(), StepExperiences); err != nil {
		return err
	}
	exp := a.Experience
	if err := validateExperience(exp); err != nil {
		return err
	}
	if exp.ID == "" {
		exp.ID = profile.NewID()
	}
	for i := range exp.Missions {
		if exp.Missions[i].ID == "" {
			exp.Missions[i].ID = profile.NewID()
		}
	}
	s.snapshot()
	s.Profile.Experiences = append(s.Profile.Experiences, exp)
	return nil
}

func applyUpdateExperience(s *Session, a UpdateExperience) error {
	if err := requireStep(s, a.Name(), StepExperiences); err != nil {
		return err
	}
	if err := validateExperience(a.Experience); err != nil {
		return err
	}
	for i := range s.Profile.Experiences {
		if s.Profile.Experiences[i].ID == a.Experience.ID {
			s.snapshot()
			s.Profile.Experiences[i] = a.Experience
			return nil
		}
	}
	return &NotFoundError{Kind: "experience", ID: a.Experience.ID}
}

func applyDeleteExperience(s *Session, a DeleteExperience) error {
	if err := requireStep(s, a.Name(), StepExperiences); err != nil {
		return err
	}
	for i := range s.Profile.Experiences {
		if s.Profile.Experiences[i].ID == a.ID {
			s.snapshot()
			s.Profile.Experiences = append(s.Profile.Experiences[:i], s.Profile.Experiences[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "experience", ID: a.ID}
}

func applyAddMission(s *Session, a AddMission) error {
	if err := requireStep(s, a.Name(), StepExperiences); err != nil {
		return err
	}
	text := strings.TrimSpace(a.Text)
	if text == "" {
		return &ValidationError{Field: "text", Message: "La mission ne peut pas être vide."}
	}
	exp := s.experienceByID(a.ExperienceID)
	if exp == nil {
		return &NotFoundError{Kind: "experience", ID: a.ExperienceID}
	}
	s.snapshot()
	exp.Missions = append(exp.Missions, profile.Mission{ID: profile.NewID(), Text: text})
	return nil
}

func applyUpdateMission(s *Session, a UpdateMission) error {
	if err := requireStep(s, a.Name(), StepExperiences); err != nil {
		return err
	}
	text := strings.TrimSpace(a.Text)
	if text == "" {
		return &ValidationError{Field: "text", Message: "La mission ne peut pas être vide."}
	}
	exp := s.experienceByID(a.ExperienceID)
	if exp == nil {
		return &NotFoundError{Kind: "experience", ID: a.ExperienceID}
	}
	for i := range exp.Missions {
		if exp.Missions[i].ID == a.MissionID {
			s.snapshot()
			exp.Missions[i].Text = text
			return nil
		}
	}
	return &NotFoundError{Kind: "mission", ID: a.MissionID}
}

func applyDeleteMission(s *Session, a DeleteMission) error {
	if err := requireStep(s, a.Name(), StepExperiences); err != nil {
		return err
	}
	exp := s.experienceByID(a.ExperienceID)
	if exp == nil {
		return &NotFoundError{Kind: "experience", ID: a.ExperienceID}
	}
	for i := range exp.Missions {
		if exp.Missions[i].ID == a.MissionID {
			s.snapshot()
			exp.Missions = append(exp.Missions[:i], exp.Missions[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "mission", ID: a.MissionID}
}

func validateEducation(edu profile.Education) error {
	if msg := validate.Required(edu.Degree, "Le diplôme est requis."); msg != "" {
		return &ValidationError{Field: "degree", Message: msg}
	}
	if msg := validate.Required(edu.Institution, "L'établissement est requis."); msg != "" {
		return &ValidationError{Field: "institution", Message: msg}
	}
	return nil
}

func applyAddEducation(s *Session, a AddEducation) error {
	if err := requireStep(s, a.Name(), StepEducation); err != nil {
		return err
	}
	edu := a.Education
	if err := validateEducation(edu); err != nil {
		return err
	}
	if edu.ID == "" {
		edu.ID = profile.NewID()
	}
	s.snapshot()
	s.Profile.Educations = append(s.Profile.Educations, edu)
	return nil
}

func applyUpdateEducation(s *Session, a UpdateEducation) error {
	if err := requireStep(s, a.Name(), StepEducation); err != nil {
		return err
	}
	if err := validateEducation(a.Education); err != nil {
		return err
	}
	for i := range s.Profile.Educations {
		if s.Profile.Educations[i].ID == a.Education.ID {
			s.snapshot()
			s.Profile.Educations[i] = a.Education
			return nil
		}
	}
	return &NotFoundError{Kind: "education", ID: a.Education.ID}
}

func applyDeleteEducation(s *Session, a DeleteEducation) error {
	if err := requireStep(s, a.Name(), StepEducation); err != nil {
		return err
	}
	for i := range s.Profile.Educations {
		if s.Profile.Educations[i].ID == a.ID {
			s.snapshot()
			s.Profile.Educations = append(s.Profile.Educations[:i], s.Profile.Educations[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "education", ID: a.ID}
}

func validateCertification(cert profile.Certification) error {
	if msg := validate.Required(cert.Name, "Le nom de la certification est requis."); msg != "" {
		return &ValidationError{Field: "name", Message: msg}
	}
	if msg := validate.Required(cert.Issuer, "L'organisme est requis."); msg != "" {
		return &ValidationError{Field: "issuer", Message: msg}
	}
	if msg := validate.Year(cert.Year, "L'année doit comporter 4 chiffres."); msg != "" {
		return &ValidationError{Field: "year", Message: msg}
	}
	return nil
}

func applyAddCertification(s *Session, a AddCertification) error {
	if err := requireStep(s, a.Name(), StepCertifications); err != nil {
		return err
	}
	cert := a.Certification
	if err := validateCertification(cert); err != nil {
		return err
	}
	if cert.ID == "" {
		cert.ID = profile.NewID()
	}
	s.snapshot()
	s.Profile.Certifications = append(s.Profile.Certifications, cert)
	return nil
}

func applyUpdateCertification(s *Session, a UpdateCertification) error {
	if err := requireStep(s, a.Name(), StepCertifications); err != nil {
		return err
	}
	if err := validateCertification(a.Certification); err != nil {
		return err
	}
	for i := range s.Profile.Certifications {
		if s.Profile.Certifications[i].ID == a.Certification.ID {
			s.snapshot()
			s.Profile.Certifications[i] = a.Certification
			return nil
		}
	}
	return &NotFoundError{Kind: "certification", ID: a.Certification.ID}
}

func applyDeleteCertification(s *Session, a DeleteCertification) error {
	if err := requireStep(s, a.Name(), StepCertifications); err != nil {
		return err
	}
	for i := range s.Profile.Certifications {
		if s.Profile.Certifications[i].ID == a.ID {
			s.snapshot()
			s.Profile.Certifications = append(s.Profile.Certifications[:i], s.Profile.Certifications[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "certification", ID: a.ID}
}

func applyAddLanguage(s *Session, a AddLanguage) error {
	if err := requireStep(s, a.Name(), StepLanguages); err != nil {
		return err
	}
	if !suggest.KnownLanguage(a.Language) {
		return &ValidationError{Field: "language", Message: "Choisissez une langue dans la liste."}
	}
	if !suggest.KnownLevel(a.Level) {
		return &ValidationError{Field: "level", Message: "Choisissez un niveau dans la liste."}
	}
	candidate := profile.Language{ID: profile.NewID(), Language: a.Language, Level: a.Level}
	for _, lang := range s.Profile.Languages {
		if lang.MergeKey() == candidate.MergeKey() {
			return &ValidationError{Field: "language", Message: "Cette langue est déjà dans la liste."}
		}
	}
	s.snapshot()
	s.Profile.Languages = append(s.Profile.Languages, candidate)
	return nil
}

// applyImport merges the staged draft. From the welcome step, a draft that
// filled a name jumps straight to Review; otherwise the identity questions
// begin so the gaps get filled.
func applyImport(s *Session, a ApplyImport) error {
	if s.UI.ImportDraft == nil {
		return &InvalidActionError{Step: s.Flow.Step, Action: a.Name(), Message: "no import draft staged"}
	}

	s.snapshot()
	draft := s.UI.ImportDraft
	s.UI.ImportDraft = nil
	s.Profile = importer.Merge(s.Profile, draft)
	s.say(RoleSystem, "Import appliqué à votre profil.")

	if s.Flow.Step == StepWelcome {
		if strings.TrimSpace(s.Profile.Identity.FirstName) != "" ||
			strings.TrimSpace(s.Profile.Identity.LastName) != "" {
			s.enterStep(StepReview)
		} else {
			s.enterStep(StepIdentity)
		}
	}
	return nil
}
