package importer

import (
	"regexp"
	"strings"
)

// Section identifies one of the recognized CV sections.
type Section string

// Recognized sections, in no particular order.
const (
	SectionNone           Section = ""
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionCertifications Section = "certifications"
)

// sectionPatterns match section headers at the start of a normalized line.
// French and English header vocabulary from real LinkedIn/CV exports. A
// keyword appearing mid-line must not trigger a section change, hence the
// ^ anchors.
var sectionPatterns = []struct {
	section Section
	re      *regexp.Regexp
}{
	{SectionSummary, regexp.MustCompile(`^(profil|résumé|résumé\s+professionnel|resume|about\s+me|à\s+propos|summary|objectif|présentation)`)},
	{SectionExperience, regexp.MustCompile(`^(expérience|experience|expériences\s+pro|parcours\s+pro|emploi|poste\s+occup|historique\s+profes)`)},
	{SectionEducation, regexp.MustCompile(`^(formation|éducation|education|études|diplôme|diplome|scolarité|parcours\s+académique|academic)`)},
	{SectionSkills, regexp.MustCompile(`^(compétence|competence|skill|savoir|expertise|technologie|stack\s+tech|outils?)`)},
	{SectionLanguages, regexp.MustCompile(`^(langue|language|lingue)`)},
	{SectionCertifications, regexp.MustCompile(`^(certification|certificat|award|récompense|accréditation|badge|habilitation)`)},
}

// trailingPunct strips decorative punctuation after a header keyword
// ("Compétences :", "Expériences —").
var trailingPunct = regexp.MustCompile(`[:\-–—]+$`)

// DetectSection classifies a line as a section header, or SectionNone.
// Matching happens on a trimmed, lower-cased copy with trailing punctuation
// removed; the original line is left untouched.
func DetectSection(line string) Section {
	clean := strings.TrimSpace(strings.ToLower(line))
	clean = strings.TrimSpace(trailingPunct.ReplaceAllString(clean, ""))
	if clean == "" {
		return SectionNone
	}
	for _, sp := range sectionPatterns {
		if sp.re.MatchString(clean) {
			return sp.section
		}
	}
	return SectionNone
}

// splitSections groups content lines under their detected section. Header
// lines start a section and are not content themselves; lines before the
// first header are ignored.
func splitSections(lines []string) map[Section][]string {
	out := make(map[Section][]string)
	current := SectionNone
	for _, line := range lines {
		if line == "" {
			continue
		}
		if section := DetectSection(line); section != SectionNone {
			current = section
			if _, ok := out[current]; !ok {
				out[current] = []string{}
			}
			continue
		}
		if current != SectionNone {
			out[current] = append(out[current], line)
		}
	}
	return out
}
