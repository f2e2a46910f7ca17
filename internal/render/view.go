package render

import (
	"strconv"
	"strings"

	"cv-builder/internal/dates"
	"cv-builder/internal/profile"
)

// TemplateData is the view model passed to the HTML template.
type TemplateData struct {
	TemplateID     string
	ATSMode        bool
	FullName       string
	JobTitle       string
	Contact        []string
	Summary        string
	Experiences    []ExperienceView
	Educations     []EducationView
	Certifications []CertificationView
	HardSkills     []string
	SoftSkills     []string
	Interests      []string
	Languages      []LanguageView
}

// ExperienceView is one experience entry with its formatted date line.
type ExperienceView struct {
	Role     string
	Company  string
	DateLine string
	Missions []string
}

// EducationView is one education entry with its formatted year range.
type EducationView struct {
	Degree      string
	Institution string
	City        string
	DateLine    string
}

// CertificationView is one certification line.
type CertificationView struct {
	Name   string
	Issuer string
	Year   string
}

// LanguageView is one spoken language with its level.
type LanguageView struct {
	Language string
	Level    string
}

// buildTemplateData maps a profile onto the view model, formatting all date
// ranges in French.
func buildTemplateData(p profile.Profile, templateID string, atsMode bool) TemplateData {
	data := TemplateData{
		TemplateID: templateID,
		ATSMode:    atsMode,
		FullName:   p.FullName(),
		JobTitle:   p.Identity.JobTitle,
		Summary:    p.Summary,
		HardSkills: p.Skills.Hard,
		SoftSkills: p.Skills.Soft,
		Interests:  p.Skills.Interests,
	}

	for _, part := range []string{p.Identity.Email, p.Identity.Phone, p.Identity.City} {
		if strings.TrimSpace(part) != "" {
			data.Contact = append(data.Contact, part)
		}
	}

	for _, exp := range p.Experiences {
		view := ExperienceView{
			Role:     exp.Role,
			Company:  exp.Company,
			DateLine: dates.RangeFR(exp.StartYM, exp.EndYM, exp.IsCurrent),
		}
		for _, m := range exp.Missions {
			if strings.TrimSpace(m.Text) != "" {
				view.Missions = append(view.Missions, m.Text)
			}
		}
		data.Experiences = append(data.Experiences, view)
	}

	for _, edu := range p.Educations {
		data.Educations = append(data.Educations, EducationView{
			Degree:      edu.Degree,
			Institution: edu.Institution,
			City:        edu.City,
			DateLine:    yearRange(edu.StartYM, edu.EndYM),
		})
	}

	for _, cert := range p.Certifications {
		data.Certifications = append(data.Certifications, CertificationView{
			Name:   cert.Name,
			Issuer: cert.Issuer,
			Year:   cert.Year,
		})
	}

	for _, lang := range p.Languages {
		data.Languages = append(data.Languages, LanguageView{
			Language: lang.Language,
			Level:    lang.Level,
		})
	}

	return data
}

// yearRange formats an education period as plain years, without duration.
func yearRange(startYM, endYM string) string {
	var labels []string
	if ym, ok := dates.ParseYM(startYM); ok {
		labels = append(labels, strconv.Itoa(ym.Year))
	}
	if ym, ok := dates.ParseYM(endYM); ok {
		labels = append(labels, strconv.Itoa(ym.Year))
	}
	return strings.Join(labels, " – ")
}
