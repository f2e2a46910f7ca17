package flow

import (
	"errors"
	"fmt"
)

// ErrNothingToUndo is returned by Back when the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// ValidationError is a recoverable field-level rejection. The step does not
// advance and the message is meant to be shown inline to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// InvalidActionError signals an action that is not available in the current
// step, or that references a missing entity.
type InvalidActionError struct {
	Step    Step
	Action  string
	Message string
}

func (e *InvalidActionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("action %s not valid in step %s: %s", e.Action, e.Step, e.Message)
	}
	return fmt.Sprintf("action %s not valid in step %s", e.Action, e.Step)
}

// UnknownActionError signals an unrecognized action type tag.
type UnknownActionError struct {
	Type string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action type: %s", e.Type)
}

// NotFoundError signals an entity reference (experience, mission, language)
// that does not exist in the profile.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
