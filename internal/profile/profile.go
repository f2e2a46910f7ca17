// Package profile defines the candidate data aggregate built by the guided
// interview and consumed by rendering, scoring and export.
package profile

import (
	"strings"

	"github.com/google/uuid"
)

// Identity holds the candidate contact block collected by the identity step.
type Identity struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	JobTitle  string `json:"job_title"`
}

// Mission is a single bullet-point accomplishment attached to an experience.
type Mission struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Experience is one entry of the work history. When IsCurrent is true EndYM
// is empty; otherwise EndYM parses and is not before StartYM.
type Experience struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	StartYM   string    `json:"start_ym"`
	EndYM     string    `json:"end_ym,omitempty"`
	IsCurrent bool      `json:"is_current"`
	Missions  []Mission `json:"missions"`
}

// Education is one degree entry. The month-ordering invariant applies when
// both dates are present.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	City        string `json:"city,omitempty"`
	StartYM     string `json:"start_ym,omitempty"`
	EndYM       string `json:"end_ym,omitempty"`
}

// Certification is a named credential with an optional 4-digit year.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year,omitempty"`
}

// Skills groups the three tag collections. Each list is de-duplicated
// case-sensitively in insertion order and capped by the flow engine.
type Skills struct {
	Hard      []string `json:"hard"`
	Soft      []string `json:"soft"`
	Interests []string `json:"interests"`
}

// Language pairs a language name with a proficiency level, unique by language.
type Language struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Level    string `json:"level"`
}

// Profile is the root aggregate, one instance per wizard session.
type Profile struct {
	Identity       Identity        `json:"identity"`
	Summary        string          `json:"summary"`
	Experiences    []Experience    `json:"experiences"`
	Educations     []Education     `json:"educations"`
	Certifications []Certification `json:"certifications"`
	Skills         Skills          `json:"skills"`
	Languages      []Language      `json:"languages"`
}

// New returns an empty profile with non-nil lists.
func New() Profile {
	return Profile{
		Experiences:    []Experience{},
		Educations:     []Education{},
		Certifications: []Certification{},
		Skills:         Skills{Hard: []string{}, Soft: []string{}, Interests: []string{}},
		Languages:      []Language{},
	}
}

// NewID generates an opaque unique identifier for list entries.
func NewID() string {
	return uuid.NewString()
}

// FullName joins first and last name with normalized spacing.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.Join(strings.Fields(p.Identity.FirstName+" "+p.Identity.LastName), " "))
}

// Clone produces a deep copy so undo snapshots never alias live state.
func (p Profile) Clone() Profile {
	out := p
	out.Experiences = make([]Experience, len(p.Experiences))
	for i, exp := range p.Experiences {
		cp := exp
		cp.Missions = append([]Mission(nil), exp.Missions...)
		out.Experiences[i] = cp
	}
	out.Educations = append([]Education(nil), p.Educations...)
	out.Certifications = append([]Certification(nil), p.Certifications...)
	out.Skills.Hard = append([]string(nil), p.Skills.Hard...)
	out.Skills.Soft = append([]string(nil), p.Skills.Soft...)
	out.Skills.Interests = append([]string(nil), p.Skills.Interests...)
	out.Languages = append([]Language(nil), p.Languages...)
	return out
}

// MergeKey identifies an experience for import de-duplication.
func (e Experience) MergeKey() string {
	return strings.ToLower(e.Role + e.Company)
}

// MergeKey identifies an education entry for import de-duplication.
func (e Education) MergeKey() string {
	return strings.ToLower(e.Degree + e.Institution)
}

// MergeKey identifies a certification for import de-duplication.
func (c Certification) MergeKey() string {
	return strings.ToLower(c.Name)
}

// MergeKey identifies a language entry for import de-duplication.
func (l Language) MergeKey() string {
	return strings.ToLower(l.Language)
}

// AppendUnique appends items to list, skipping exact duplicates while
// preserving insertion order, and truncates the result to max entries.
func AppendUnique(list []string, items []string, max int) []string {
	seen := make(map[string]bool, len(list))
	out := append([]string(nil), list...)
	for _, existing := range list {
		seen[existing] = true
	}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// SplitList splits free-typed comma-separated input into trimmed items.
func SplitList(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
