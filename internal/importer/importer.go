// Package importer turns free-form pasted text (LinkedIn export, extracted
// PDF text) into a partial profile draft. Parsing is deliberately best-effort
// regex work: caps truncate instead of erroring and unparseable dates are
// dropped silently. The importer never touches a live profile; Merge applies
// a draft non-destructively.
package importer

import (
	"fmt"
	"regexp"
	"strings"

	"cv-builder/internal/profile"
)

// Extraction caps. Soft limits: extra matches are ignored, never an error.
const (
	maxExperiences      = 8
	maxMissionsPerEntry = 8
	maxEducations       = 5
	maxCertifications   = 8
	maxSkills           = 20
	maxSummaryChars     = 800
	minParagraphChars   = 80
	maxFieldChars       = 80
	missionWindow       = 15
	dateLookahead       = 6
	fallbackExperiences = 5
	fallbackDateWindow  = 5
	summaryMaxLines     = 8
	nameScanLines       = 6
	titleScanLines      = 8
)

var (
	emailPattern = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	yearPattern  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	digitPattern = regexp.MustCompile(`[@\d]`)
	bulletPrefix = regexp.MustCompile(`^[-•·▪▸→]\s*`)

	// dateRangeSplit separates the start and end halves of a date line
	// ("jan 2021 — mars 2023", "2019 à 2021").
	dateRangeSplit = regexp.MustCompile(`[-–—]|\bà\b`)

	currentTokens = regexp.MustCompile(`(?i)\b(en cours|présent|present|current|aujourd|maintenant)\b`)

	titleKeywords = regexp.MustCompile(`(?i)développeu|developer|engineer|ingénieur|manager|directeur|directrice|consultant|analyst|designer|chef|respon|commercial|comptable`)

	skillDelims    = regexp.MustCompile(`[,;|•·▪▸→]`)
	languageDelims = regexp.MustCompile(`[-–—:|·]`)

	// monthTokens matches French and English month-name prefixes, longest
	// alternative first so "janvier" resolves before "jan" would.
	monthTokens = regexp.MustCompile(`(?i)\b(janv|jan|févr|fév|feb|mars|mar|avr|apr|mai|may|juin|jun|juil|jul|août|aug|sept|sep|oct|nov|déc|dec)`)

	// monthWords swallows whole month names when testing whether a line is
	// purely a date range.
	monthWords = regexp.MustCompile(`(?i)\b(janvier|janv|jan|février|févr|fév|february|feb|mars|march|mar|avril|avr|april|apr|mai|may|juin|june|jun|juillet|juil|july|jul|août|august|aug|septembre|september|sept|sep|octobre|october|oct|novembre|november|nov|décembre|december|déc|dec)\w*`)
)

var monthNumbers = map[string]string{
	"jan": "01", "janv": "01",
	"fév": "02", "févr": "02", "feb": "02",
	"mar": "03", "mars": "03",
	"avr": "04", "apr": "04",
	"mai": "05", "may": "05",
	"jun": "06", "juin": "06",
	"jul": "07", "juil": "07",
	"août": "08", "aug": "08",
	"sep": "09", "sept": "09",
	"oct": "10", "nov": "11",
	"déc": "12", "dec": "12",
}

// Draft is a partial, unconfirmed profile proposed by the importer.
type Draft struct {
	Identity       profile.Identity        `json:"identity"`
	Summary        string                  `json:"summary,omitempty"`
	Experiences    []profile.Experience    `json:"experiences,omitempty"`
	Educations     []profile.Education     `json:"educations,omitempty"`
	Certifications []profile.Certification `json:"certifications,omitempty"`
	HardSkills     []string                `json:"hard_skills,omitempty"`
	Languages      []profile.Language      `json:"languages,omitempty"`
}

// ParseFreeText scans raw text and proposes a draft. Returns nil for empty
// or whitespace-only input; never fails on arbitrary printable text.
func ParseFreeText(raw string) *Draft {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if raw == "" {
		return nil
	}

	draft := &Draft{}

	if m := emailPattern.FindString(raw); m != "" {
		draft.Identity.Email = m
	}
	if m := phonePattern.FindString(raw); m != "" {
		draft.Identity.Phone = strings.Join(strings.Fields(m), " ")
	}

	lines := make([]string, 0, 64)
	for _, line := range strings.Split(raw, "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}

	extractName(draft, lines)
	extractTitle(draft, lines)

	sections := splitSections(lines)

	extractSummary(draft, sections[SectionSummary], raw)
	draft.Experiences = parseExperiences(sections[SectionExperience])
	if len(draft.Experiences) == 0 {
		draft.Experiences = fallbackExperiencesScan(lines)
	}
	draft.Educations = parseEducations(sections[SectionEducation])
	draft.Certifications = parseCertifications(sections[SectionCertifications])
	draft.HardSkills = parseSkills(sections[SectionSkills])
	draft.Languages = parseLanguages(sections[SectionLanguages])

	return draft
}

// extractName picks the first short, digit-free, non-header line and splits
// it into first name plus remainder-as-last-name.
func extractName(draft *Draft, lines []string) {
	limit := min(nameScanLines, len(lines))
	for _, line := range lines[:limit] {
		if len(line) < 3 || len(line) > 50 {
			continue
		}
		if digitPattern.MatchString(line) || DetectSection(line) != SectionNone {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 1 && len(parts) <= 5 {
			draft.Identity.FirstName = parts[0]
			draft.Identity.LastName = strings.Join(parts[1:], " ")
			return
		}
	}
}

// extractTitle scans the next few lines for a profession-indicating keyword.
func extractTitle(draft *Draft, lines []string) {
	limit := min(titleScanLines, len(lines))
	if limit < 2 {
		return
	}
	for _, line := range lines[1:limit] {
		if len(line) < 5 || len(line) > maxFieldChars {
			continue
		}
		if DetectSection(line) != SectionNone {
			continue
		}
		if titleKeywords.MatchString(line) {
			draft.Identity.JobTitle = line
			return
		}
	}
}

// extractSummary joins the first lines of the summary section, or falls back
// to the first paragraph longer than the minimum threshold.
func extractSummary(draft *Draft, sectionLines []string, raw string) {
	if len(sectionLines) > 0 {
		limit := min(summaryMaxLines, len(sectionLines))
		draft.Summary = truncate(strings.Join(sectionLines[:limit], " "), maxSummaryChars)
		return
	}
	for _, paragraph := range regexp.MustCompile(`\n{2,}`).Split(raw, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if len(paragraph) > minParagraphChars {
			draft.Summary = truncate(paragraph, maxSummaryChars)
			return
		}
	}
}

// parseExperiences scans a section for blocks of the shape role line /
// dated line nearby / short company line / bullet or sentence missions.
func parseExperiences(lines []string) []profile.Experience {
	var out []profile.Experience
	i := 0
	for i < len(lines) && len(out) < maxExperiences {
		line := lines[i]
		if len(line) < 2 {
			i++
			continue
		}

		dateIdx := -1
		for j := i; j < min(i+dateLookahead, len(lines)); j++ {
			if yearPattern.MatchString(lines[j]) {
				dateIdx = j
				break
			}
		}
		if dateIdx < 0 {
			i++
			continue
		}

		exp := profile.Experience{
			ID:       profile.NewID(),
			Role:     truncate(line, maxFieldChars),
			Missions: []profile.Mission{},
		}

		startYM, endYM, isCurrent := parseDateRange(lines[dateIdx])
		exp.StartYM = startYM
		exp.EndYM = endYM
		exp.IsCurrent = isCurrent

		// Company: first short undated, non-bullet line after the role,
		// skipping the date line itself.
		consumed := i + 1
		for j := i + 1; j < min(i+4, len(lines)); j++ {
			if j == dateIdx {
				continue
			}
			candidate := lines[j]
			if candidate == "" || bulletPrefix.MatchString(candidate) {
				break
			}
			if len(candidate) <= maxFieldChars && !yearPattern.MatchString(candidate) {
				exp.Company = truncate(candidate, maxFieldChars)
				consumed = j + 1
				break
			}
		}
		if dateIdx+1 > consumed {
			consumed = dateIdx + 1
		}

		j := consumed
		for ; j < len(lines) && j < i+missionWindow; j++ {
			ml := lines[j]
			if ml == "" {
				continue
			}
			if yearPattern.MatchString(ml) || DetectSection(ml) != SectionNone {
				break
			}
			if bulletPrefix.MatchString(ml) {
				exp.Missions = append(exp.Missions, profile.Mission{
					ID: profile.NewID(), Text: bulletPrefix.ReplaceAllString(ml, ""),
				})
			} else if len(ml) > 10 {
				exp.Missions = append(exp.Missions, profile.Mission{ID: profile.NewID(), Text: ml})
			}
			if len(exp.Missions) >= maxMissionsPerEntry {
				j++
				break
			}
		}

		out = append(out, exp)
		i = max(j, consumed)
	}
	return out
}

// parseDateRange extracts up to two years from a dated line, mapping month
// names when present and defaulting to January. "current"-like tokens mark
// an open-ended range.
func parseDateRange(line string) (startYM, endYM string, isCurrent bool) {
	isCurrent = currentTokens.MatchString(line)
	halves := dateRangeSplit.Split(line, 2)
	startYM = monthFromFragment(halves[0])
	if len(halves) > 1 && !isCurrent {
		endYM = monthFromFragment(halves[1])
	}
	if isCurrent {
		endYM = ""
	}
	return startYM, endYM, isCurrent
}

// monthFromFragment builds "YYYY-MM" from a text fragment containing a year
// and optionally a month name. Returns "" when no year is found.
func monthFromFragment(fragment string) string {
	year := yearPattern.FindString(fragment)
	if year == "" {
		return ""
	}
	month := "01"
	if m := monthTokens.FindString(fragment); m != "" {
		if num, ok := monthNumbers[strings.ToLower(m)]; ok {
			month = num
		}
	}
	return year + "-" + month
}

// fallbackExperiencesScan is the weaker whole-document pass used when no
// experience section was detected: consecutive line pairs with a year in a
// short lookahead become role+company, without dates or missions.
func fallbackExperiencesScan(lines []string) []profile.Experience {
	var out []profile.Experience
	content := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			content = append(content, line)
		}
	}
	for i := 0; i+1 < len(content) && len(out) < fallbackExperiences; i++ {
		line := content[i]
		if len(line) < 3 || len(line) > maxFieldChars {
			continue
		}
		hasDateNearby := false
		for j := i; j < min(i+fallbackDateWindow, len(content)); j++ {
			if yearPattern.MatchString(content[j]) {
				hasDateNearby = true
				break
			}
		}
		if hasDateNearby && len(content[i+1]) <= maxFieldChars {
			out = append(out, profile.Experience{
				ID:       profile.NewID(),
				Role:     truncate(line, maxFieldChars),
				Company:  truncate(content[i+1], maxFieldChars),
				Missions: []profile.Mission{},
			})
		}
	}
	return out
}

// parseEducations applies the two-line degree/institution heuristic. A lone
// year maps to a September start and an estimated three-year June end.
func parseEducations(lines []string) []profile.Education {
	var out []profile.Education
	i := 0
	for i < len(lines) && len(out) < maxEducations {
		line := lines[i]
		if len(line) < 2 || isDateLine(line) {
			i++
			continue
		}

		edu := profile.Education{ID: profile.NewID(), Degree: truncate(line, maxFieldChars)}

		if i+1 < len(lines) && len(lines[i+1]) <= maxFieldChars && !yearPattern.MatchString(lines[i+1]) {
			edu.Institution = truncate(lines[i+1], maxFieldChars)
		}

		dateLine := ""
		for j := i; j < min(i+fallbackDateWindow, len(lines)); j++ {
			if yearPattern.MatchString(lines[j]) {
				dateLine = lines[j]
				break
			}
		}
		if years := yearPattern.FindAllString(dateLine, -1); len(years) > 0 {
			edu.StartYM = years[0] + "-09"
			if len(years) > 1 {
				edu.EndYM = years[1] + "-06"
			} else {
				edu.EndYM = fmt.Sprintf("%s-06", addYears(years[0], 3))
			}
		}

		out = append(out, edu)
		if edu.Institution != "" {
			i += 2
		} else {
			i++
		}
	}
	return out
}

// isDateLine reports whether a line is essentially a date range: removing
// year tokens and separators leaves nothing meaningful.
func isDateLine(line string) bool {
	if !yearPattern.MatchString(line) {
		return false
	}
	rest := yearPattern.ReplaceAllString(line, "")
	rest = monthWords.ReplaceAllString(rest, "")
	rest = strings.Trim(rest, "-–—à()/ .")
	return len(rest) < 3
}

// addYears shifts a 4-digit year string. The input is guaranteed to be
// digits by yearPattern.
func addYears(year string, delta int) string {
	var y int
	fmt.Sscanf(year, "%d", &y)
	return fmt.Sprintf("%d", y+delta)
}

// parseCertifications maps each line to one certification, extracting and
// stripping a 4-digit year token from the name.
func parseCertifications(lines []string) []profile.Certification {
	var out []profile.Certification
	for _, line := range lines {
		if len(out) >= maxCertifications {
			break
		}
		if len(line) < 2 {
			continue
		}
		year := yearPattern.FindString(line)
		name := yearPattern.ReplaceAllString(line, "")
		name = strings.TrimSpace(strings.Trim(name, "-–—( )"))
		out = append(out, profile.Certification{
			ID:   profile.NewID(),
			Name: truncate(name, maxFieldChars),
			Year: year,
		})
	}
	return out
}

// parseSkills splits every line on common delimiters, trims, filters by
// length bounds, de-duplicates and caps.
func parseSkills(lines []string) []string {
	var items []string
	for _, line := range lines {
		for _, part := range skillDelims.Split(line, -1) {
			part = strings.TrimSpace(part)
			if len(part) >= 2 && len(part) <= 40 {
				items = append(items, part)
			}
		}
	}
	return profile.AppendUnique(nil, items, maxSkills)
}

// parseLanguages splits each line into language and level on a dash/colon
// delimiter, defaulting the level when absent.
func parseLanguages(lines []string) []profile.Language {
	var out []profile.Language
	for _, line := range lines {
		parts := languageDelims.Split(line, -1)
		if len(parts) == 0 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if len(name) < 2 || len(name) > 30 {
			continue
		}
		level := "Non précisé"
		if len(parts) > 1 {
			if l := strings.TrimSpace(parts[1]); l != "" {
				level = l
			}
		}
		out = append(out, profile.Language{ID: profile.NewID(), Language: name, Level: level})
	}
	return out
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
