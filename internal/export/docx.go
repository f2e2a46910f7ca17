package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"cv-builder/internal/dates"
	"cv-builder/internal/profile"
)

const (
	docxAccent    = "1D4ED8"
	docxMuted     = "555555"
	docxNameSize  = "36"
	docxTitleSize = "26"
	docxHeadSize  = "24"
)

// DOCX builds a Word document for the profile: name and contact header, then
// one section per non-empty profile area, missions as bullet lines.
func DOCX(p profile.Profile) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText(p.FullName()).Size(docxNameSize).Bold()
	if p.Identity.JobTitle != "" {
		doc.AddParagraph().AddText(p.Identity.JobTitle).Size(docxTitleSize).Color(docxAccent)
	}

	var contact []string
	for _, part := range []string{p.Identity.Email, p.Identity.Phone, p.Identity.City} {
		if strings.TrimSpace(part) != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		doc.AddParagraph().AddText(strings.Join(contact, " · ")).Color(docxMuted)
	}

	if p.Summary != "" {
		addHeading(doc, "Profil")
		doc.AddParagraph().AddText(p.Summary)
	}

	if len(p.Experiences) > 0 {
		addHeading(doc, "Expérience professionnelle")
		for _, exp := range p.Experiences {
			line := doc.AddParagraph()
			line.AddText(exp.Role).Bold()
			if exp.Company != "" {
				line.AddText(" – " + exp.Company)
			}
			if dateLine := dates.RangeFR(exp.StartYM, exp.EndYM, exp.IsCurrent); dateLine != "" {
				doc.AddParagraph().AddText(dateLine).Color(docxMuted)
			}
			for _, m := range exp.Missions {
				if strings.TrimSpace(m.Text) == "" {
					continue
				}
				doc.AddParagraph().AddText("• " + m.Text)
			}
		}
	}

	if len(p.Educations) > 0 {
		addHeading(doc, "Formation")
		for _, edu := range p.Educations {
			line := doc.AddParagraph()
			line.AddText(edu.Degree).Bold()
			if edu.Institution != "" {
				line.AddText(" – " + edu.Institution)
			}
		}
	}

	if len(p.Certifications) > 0 {
		addHeading(doc, "Certifications")
		for _, cert := range p.Certifications {
			text := cert.Name
			if cert.Issuer != "" {
				text += " – " + cert.Issuer
			}
			if cert.Year != "" {
				text += fmt.Sprintf(" (%s)", cert.Year)
			}
			doc.AddParagraph().AddText(text)
		}
	}

	if len(p.Skills.Hard) > 0 {
		addHeading(doc, "Compétences")
		doc.AddParagraph().AddText(strings.Join(p.Skills.Hard, ", "))
	}
	if len(p.Skills.Soft) > 0 {
		addHeading(doc, "Savoir-être")
		doc.AddParagraph().AddText(strings.Join(p.Skills.Soft, ", "))
	}

	if len(p.Languages) > 0 {
		addHeading(doc, "Langues")
		for _, lang := range p.Languages {
			text := lang.Language
			if lang.Level != "" {
				text += " – " + lang.Level
			}
			doc.AddParagraph().AddText(text)
		}
	}

	if len(p.Skills.Interests) > 0 {
		addHeading(doc, "Centres d'intérêt")
		doc.AddParagraph().AddText(strings.Join(p.Skills.Interests, ", "))
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to build DOCX: %w", err)
	}
	return buf.Bytes(), nil
}

func addHeading(doc *docx.Docx, title string) {
	doc.AddParagraph().AddText(title).Size(docxHeadSize).Bold().Color(docxAccent)
}
