// Package validate provides the field-level predicates used by the identity
// questions and the loop forms. Validators return a French user-facing
// message, or "" when the value is acceptable.
package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	v = validator.New()

	phoneAllowed = regexp.MustCompile(`^[+\d]+$`)
	nonPhone     = regexp.MustCompile(`[^\d+]`)
	digitsOnly   = regexp.MustCompile(`\D`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// Required rejects empty or whitespace-only values.
func Required(value, msg string) string {
	if strings.TrimSpace(value) == "" {
		return msg
	}
	return ""
}

// Email rejects empty values and anything that is not a plausible address.
func Email(value, msg string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return msg
	}
	if err := v.Var(value, "email"); err != nil {
		return msg
	}
	return ""
}

// Phone accepts 8 to 15 digits with an optional leading "+"; spaces, dots,
// dashes and parentheses are stripped before checking.
func Phone(value, msg string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return msg
	}
	cleaned := nonPhone.ReplaceAllString(value, "")
	digits := digitsOnly.ReplaceAllString(cleaned, "")
	if len(digits) < 8 || len(digits) > 15 {
		return msg
	}
	if !phoneAllowed.MatchString(cleaned) {
		return msg
	}
	return ""
}

// Year accepts an empty value or exactly four digits.
func Year(value, msg string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !yearPattern.MatchString(value) {
		return msg
	}
	return ""
}
