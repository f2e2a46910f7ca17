package flow

import (
	"encoding/json"
	"fmt"

	"cv-builder/internal/profile"
)

// Action is one user input event applied to a Session by the engine.
// Implementations form a closed tagged union.
type Action interface {
	isAction()
	// Name is the wire tag of the action, also used in error messages.
	Name() string
}

// StartFresh leaves the welcome step and begins the identity questions.
type StartFresh struct{}

// AnswerIdentity answers the current identity question.
type AnswerIdentity struct {
	Text string `json:"text"`
}

// SaveSummary stores the professional summary and advances.
type SaveSummary struct {
	Text string `json:"text"`
}

// AddExperience appends a validated experience entry.
type AddExperience struct {
	Experience profile.Experience `json:"experience"`
}

// UpdateExperience replaces the experience with the same ID.
type UpdateExperience struct {
	Experience profile.Experience `json:"experience"`
}

// DeleteExperience removes an experience by ID.
type DeleteExperience struct {
	ID string `json:"id"`
}

// AddMission appends a mission to an experience.
type AddMission struct {
	ExperienceID string `json:"experience_id"`
	Text         string `json:"text"`
}

// UpdateMission rewrites one mission's text.
type UpdateMission struct {
	ExperienceID string `json:"experience_id"`
	MissionID    string `json:"mission_id"`
	Text         string `json:"text"`
}

// DeleteMission removes one mission from an experience.
type DeleteMission struct {
	ExperienceID string `json:"experience_id"`
	MissionID    string `json:"mission_id"`
}

// AddEducation appends a validated education entry.
type AddEducation struct {
	Education profile.Education `json:"education"`
}

// UpdateEducation replaces the education entry with the same ID.
type UpdateEducation struct {
	Education profile.Education `json:"education"`
}

// DeleteEducation removes an education entry by ID.
type DeleteEducation struct {
	ID string `json:"id"`
}

// AddCertification appends a validated certification.
type AddCertification struct {
	Certification profile.Certification `json:"certification"`
}

// UpdateCertification replaces the certification with the same ID.
type UpdateCertification struct {
	Certification profile.Certification `json:"certification"`
}

// DeleteCertification removes a certification by ID.
type DeleteCertification struct {
	ID string `json:"id"`
}

// SetHardSkills replaces the hard-skill list from comma-separated input.
type SetHardSkills struct {
	Text string `json:"text"`
}

// SetSoftSkills replaces the soft-skill list from comma-separated input.
type SetSoftSkills struct {
	Text string `json:"text"`
}

// SetInterests replaces the interest list from comma-separated input.
type SetInterests struct {
	Text string `json:"text"`
}

// AddLanguage adds a spoken language picked from the fixed lists.
type AddLanguage struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// RemoveLanguage removes a language entry by ID.
type RemoveLanguage struct {
	ID string `json:"id"`
}

// Continue leaves the current loop step for the next one.
type Continue struct{}

// EditSection jumps from Review back into a section.
type EditSection struct {
	Step Step `json:"step"`
}

// Finish moves from Review to the terminal step.
type Finish struct{}

// Back pops the most recent undo snapshot.
type Back struct{}

// Reset discards the whole session state and returns to the welcome step.
type Reset struct{}

// ToggleATSMode flips the ATS display mode. Presentation-only.
type ToggleATSMode struct{}

// SelectTemplate switches the CV template. Presentation-only.
type SelectTemplate struct {
	TemplateID string `json:"template_id"`
}

// ApplyImport merges the staged import draft into the profile.
type ApplyImport struct{}

func (StartFresh) isAction()          {}
func (AnswerIdentity) isAction()      {}
func (SaveSummary) isAction()         {}
func (AddExperience) isAction()       {}
func (UpdateExperience) isAction()    {}
func (DeleteExperience) isAction()    {}
func (AddMission) isAction()          {}
func (UpdateMission) isAction()       {}
func (DeleteMission) isAction()       {}
func (AddEducation) isAction()        {}
func (UpdateEducation) isAction()     {}
func (DeleteEducation) isAction()     {}
func (AddCertification) isAction()    {}
func (UpdateCertification) isAction() {}
func (DeleteCertification) isAction() {}
func (SetHardSkills) isAction()       {}
func (SetSoftSkills) isAction()       {}
func (SetInterests) isAction()        {}
func (AddLanguage) isAction()         {}
func (RemoveLanguage) isAction()      {}
func (Continue) isAction()            {}
func (EditSection) isAction()         {}
func (Finish) isAction()              {}
func (Back) isAction()                {}
func (Reset) isAction()               {}
func (ToggleATSMode) isAction()       {}
func (SelectTemplate) isAction()      {}
func (ApplyImport) isAction()         {}

func (StartFresh) Name() string          { return "start_fresh" }
func (AnswerIdentity) Name() string      { return "answer_identity" }
func (SaveSummary) Name() string         { return "save_summary" }
func (AddExperience) Name() string       { return "add_experience" }
func (UpdateExperience) Name() string    { return "update_experience" }
func (DeleteExperience) Name() string    { return "delete_experience" }
func (AddMission) Name() string          { return "add_mission" }
func (UpdateMission) Name() string       { return "update_mission" }
func (DeleteMission) Name() string       { return "delete_mission" }
func (AddEducation) Name() string        { return "add_education" }
func (UpdateEducation) Name() string     { return "update_education" }
func (DeleteEducation) Name() string     { return "delete_education" }
func (AddCertification) Name() string    { return "add_certification" }
func (UpdateCertification) Name() string { return "update_certification" }
func (DeleteCertification) Name() string { return "delete_certification" }
func (SetHardSkills) Name() string       { return "set_hard_skills" }
func (SetSoftSkills) Name() string       { return "set_soft_skills" }
func (SetInterests) Name() string        { return "set_interests" }
func (AddLanguage) Name() string         { return "add_language" }
func (RemoveLanguage) Name() string      { return "remove_language" }
func (Continue) Name() string            { return "continue" }
func (EditSection) Name() string         { return "edit_section" }
func (Finish) Name() string              { return "finish" }
func (Back) Name() string                { return "back" }
func (Reset) Name() string               { return "reset" }
func (ToggleATSMode) Name() string       { return "toggle_ats_mode" }
func (SelectTemplate) Name() string      { return "select_template" }
func (ApplyImport) Name() string         { return "apply_import" }

// decodeAs unmarshals the payload into a concrete action value.
func decodeAs[T Action](typ string, payload json.RawMessage) (Action, error) {
	var action T
	if err := json.Unmarshal(payload, &action); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", typ, err)
	}
	return action, nil
}

// DecodeAction turns a wire tag plus raw JSON payload into a typed action.
func DecodeAction(typ string, payload json.RawMessage) (Action, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	switch typ {
	case "start_fresh":
		return StartFresh{}, nil
	case "answer_identity":
		return decodeAs[AnswerIdentity](typ, payload)
	case "save_summary":
		return decodeAs[SaveSummary](typ, payload)
	case "add_experience":
		return decodeAs[AddExperience](typ, payload)
	case "update_experience":
		return decodeAs[UpdateExperience](typ, payload)
	case "delete_experience":
		return decodeAs[DeleteExperience](typ, payload)
	case "add_mission":
		return decodeAs[AddMission](typ, payload)
	case "update_mission":
		return decodeAs[UpdateMission](typ, payload)
	case "delete_mission":
		return decodeAs[DeleteMission](typ, payload)
	case "add_education":
		return decodeAs[AddEducation](typ, payload)
	case "update_education":
		return decodeAs[UpdateEducation](typ, payload)
	case "delete_education":
		return decodeAs[DeleteEducation](typ, payload)
	case "add_certification":
		return decodeAs[AddCertification](typ, payload)
	case "update_certification":
		return decodeAs[UpdateCertification](typ, payload)
	case "delete_certification":
		return decodeAs[DeleteCertification](typ, payload)
	case "set_hard_skills":
		return decodeAs[SetHardSkills](typ, payload)
	case "set_soft_skills":
		return decodeAs[SetSoftSkills](typ, payload)
	case "set_interests":
		return decodeAs[SetInterests](typ, payload)
	case "add_language":
		return decodeAs[AddLanguage](typ, payload)
	case "remove_language":
		return decodeAs[RemoveLanguage](typ, payload)
	case "continue":
		return Continue{}, nil
	case "edit_section":
		return decodeAs[EditSection](typ, payload)
	case "finish":
		return Finish{}, nil
	case "back":
		return Back{}, nil
	case "reset":
		return Reset{}, nil
	case "toggle_ats_mode":
		return ToggleATSMode{}, nil
	case "select_template":
		return decodeAs[SelectTemplate](typ, payload)
	case "apply_import":
		return ApplyImport{}, nil
	default:
		return nil, &UnknownActionError{Type: typ}
	}
}
