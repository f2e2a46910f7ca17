// Package render produces the HTML document for a CV, in one of the
// built-in visual templates or the ATS-safe layout.
package render

import "fmt"

// TemplateError represents an error parsing or executing an HTML template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// UnknownTemplateError signals a template identifier outside the built-in set
type UnknownTemplateError struct {
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %s", e.TemplateID)
}
